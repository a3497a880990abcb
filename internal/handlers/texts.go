package handlers

// User-facing texts. Button labels stay under Telegram's 64-byte limit.
const (
	btnSessions = "Смены"
	btnPlaces   = "Места проведения"
	btnMoreInfo = "Дополнительная информация"

	btnReturn      = "Вернуться ↩️"
	btnToRoot      = "В начало ↩️"
	btnSessionList = "К списку смен 📃"
	btnPlaceList   = "К списку мест 📃"
	btnRegister    = "Записаться!"
	btnCancel      = "Отмена"

	textSessionsList  = "Вот список всех смен:"
	textSessionsEmpty = "Смен пока нет)"
	textPlacesList    = "Это места, где обычно проходят смены. О каком месте Вы хотите узнать?"
	textPlacesEmpty   = "Мест пока нет)"
	textInfosList     = "Вот статьи, которые помогут Вам ответить на некоторые вопросы:"
	textInfosEmpty    = "Пока что нам нечего Вам рассказать)"

	textSessionNotFound = "Приносим извинения, смена не найдена("
	textPlaceNotFound   = "Приносим извинения, данное место не найдено"
	textInfoNotFound    = "Приносим извинения, статья не найдена("

	textHelpPrompt = "Отправьте интересующий вопрос или проблему. Этот текст будет перенаправлен для дальнейшей консультации"

	textReloadDone = "Контент обновлён"
)
