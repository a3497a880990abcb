package handlers

import (
	tg "github.com/nika-camp/campbot/core/telegram"
	"github.com/nika-camp/campbot/core/telegram/commands"
	"github.com/nika-camp/campbot/core/telegram/state"
	"github.com/nika-camp/campbot/internal/content"
)

// Register wires every dialog handler into the registry and the
// conversation state table.
func (h *Handlers) Register(reg *tg.Registry) {
	reg.RegisterCommand("/start", commands.Command{
		Handler:     h.Start,
		Description: "Главное меню",
	})
	reg.RegisterCommand("/help", commands.Command{
		Handler:     h.Help,
		Description: "Связаться с нами",
	})
	reg.RegisterCommand("/reload", commands.Command{
		Handler:     h.Reload,
		Description: "Обновить контент",
		AdminOnly:   true,
		Hidden:      true,
	})

	reg.RegisterCallback(nsMain, h.MainMenu)
	reg.RegisterCallback(string(content.KindSession), h.Sessions)
	reg.RegisterCallback(string(content.KindPlace), h.Places)
	reg.RegisterCallback(string(content.KindInfo), h.Infos)

	state.RegisterHandler(StateHelpRequest, h.HelpForward)
}
