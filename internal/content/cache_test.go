package content

import (
	"context"
	"errors"
	"os"
	"testing"

	"github.com/nika-camp/campbot/core/logger"
)

func TestMain(m *testing.M) {
	_ = logger.InitLogger(nil)
	os.Exit(m.Run())
}

func TestStartTextDefaultBeforeLoad(t *testing.T) {
	c := NewGeneralCache(func(ctx context.Context) (*GeneralInfo, error) {
		t.Fatal("loader must not run on read")
		return nil, nil
	})
	if got := c.StartText(); got != DefaultStartText {
		t.Errorf("StartText() = %q", got)
	}
}

func TestRefreshLoadsGreeting(t *testing.T) {
	c := NewGeneralCache(func(ctx context.Context) (*GeneralInfo, error) {
		return &GeneralInfo{ID: 1, StartText: "Добро пожаловать!"}, nil
	})
	if err := c.Refresh(context.Background()); err != nil {
		t.Fatalf("Refresh: %v", err)
	}
	if got := c.StartText(); got != "Добро пожаловать!" {
		t.Errorf("StartText() = %q", got)
	}
}

func TestRefreshNotFoundClearsToDefault(t *testing.T) {
	loaded := &GeneralInfo{ID: 1, StartText: "старый текст"}
	var missing bool
	c := NewGeneralCache(func(ctx context.Context) (*GeneralInfo, error) {
		if missing {
			return nil, ErrNotFound
		}
		return loaded, nil
	})

	if err := c.Refresh(context.Background()); err != nil {
		t.Fatalf("Refresh: %v", err)
	}
	missing = true
	if err := c.Refresh(context.Background()); err != nil {
		t.Fatalf("Refresh after delete: %v", err)
	}
	if got := c.StartText(); got != DefaultStartText {
		t.Errorf("StartText() = %q, want default after row removal", got)
	}
}

func TestRefreshFailureKeepsPreviousValue(t *testing.T) {
	var fail bool
	c := NewGeneralCache(func(ctx context.Context) (*GeneralInfo, error) {
		if fail {
			return nil, errors.New("connection refused")
		}
		return &GeneralInfo{ID: 1, StartText: "рабочий текст"}, nil
	})

	if err := c.Refresh(context.Background()); err != nil {
		t.Fatalf("Refresh: %v", err)
	}
	fail = true
	if err := c.Refresh(context.Background()); err == nil {
		t.Fatal("Refresh should surface loader failure")
	}
	if got := c.StartText(); got != "рабочий текст" {
		t.Errorf("StartText() = %q, want previous value kept", got)
	}
}

func TestStartTextEmptyFallsBack(t *testing.T) {
	c := NewGeneralCache(func(ctx context.Context) (*GeneralInfo, error) {
		return &GeneralInfo{ID: 1, StartText: ""}, nil
	})
	if err := c.Refresh(context.Background()); err != nil {
		t.Fatalf("Refresh: %v", err)
	}
	if got := c.StartText(); got != DefaultStartText {
		t.Errorf("StartText() = %q", got)
	}
}
