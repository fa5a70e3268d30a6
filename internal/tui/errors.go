package tui

import (
	"errors"
	"strings"

	"notewell/internal/adapter"
)

func humanizeServerUnavailableError(err error) string {
	if err == nil {
		return ""
	}

	s := strings.ToLower(err.Error())
	if strings.Contains(s, "connection refused") ||
		strings.Contains(s, "dial tcp") ||
		strings.Contains(s, "no such host") ||
		strings.Contains(s, "network is unreachable") ||
		strings.Contains(s, "i/o timeout") ||
		strings.Contains(s, "context deadline exceeded") {
		return "Отсутствует сеть или Сервер недоступен"
	}

	return err.Error()
}

func authErrorMessage(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, adapter.ErrUnauthorized):
		return "Неверный email или пароль"
	case errors.Is(err, adapter.ErrConflict):
		return "Пользователь с таким email уже существует"
	case errors.Is(err, adapter.ErrBadRequest):
		return "Email и пароль обязательны"
	default:
		return humanizeServerUnavailableError(err)
	}
}

func aiErrorMessage(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, adapter.ErrAIUnavailable):
		return "ИИ-сервис не настроен на сервере"
	case errors.Is(err, adapter.ErrBadGateway):
		return "ИИ-сервис временно недоступен"
	default:
		return humanizeServerUnavailableError(err)
	}
}
