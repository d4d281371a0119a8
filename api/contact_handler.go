package api

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/sHiNy2005-beep/journalreact/errs"
)

// ContactSender relays a contact-form submission; *services.Mailer satisfies it.
type ContactSender interface {
	SendContactMessage(name, email, reason, message string) error
}

type contactHandler struct {
	responder Responder
	logger    zerolog.Logger
	sender    ContactSender
}

func newContactHandler(sender ContactSender) contactHandler {
	logger := log.With().Str("handlerName", "contactHandler").Logger()

	return contactHandler{
		responder: NewResponder(logger),
		logger:    logger,
		sender:    sender,
	}
}

type contactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Reason  string `json:"reason"`
	Message string `json:"message"`
}

// submitContact validates and relays a contact-form message.
func (h contactHandler) submitContact() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if h.sender == nil {
			h.responder.WriteError(w, errs.NewApiErr(http.StatusServiceUnavailable, "contact relay is not configured"))
			return
		}

		var req contactRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		var fieldErrs []errs.FieldError
		if strings.TrimSpace(req.Name) == "" {
			fieldErrs = append(fieldErrs, fieldError("name", "name is required"))
		}
		email := strings.TrimSpace(req.Email)
		if email == "" {
			fieldErrs = append(fieldErrs, fieldError("email", "email is required"))
		} else if !strings.Contains(email, "@") {
			fieldErrs = append(fieldErrs, fieldError("email", "email is invalid"))
		}
		if strings.TrimSpace(req.Message) == "" {
			fieldErrs = append(fieldErrs, fieldError("message", "message is required"))
		}
		if len(fieldErrs) > 0 {
			h.responder.WriteError(w, errs.NewValidationError(fieldErrs))
			return
		}

		if err := h.sender.SendContactMessage(req.Name, email, req.Reason, req.Message); err != nil {
			h.logger.Error().Err(err).Msg("Failed to relay contact message")
			h.responder.WriteError(w, errs.NewInternalError("could not send message"))
			return
		}

		h.responder.WriteJSON(w, map[string]string{
			"status":  "success",
			"message": "message sent",
		})
	}
}
