package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"notewell/internal/logger"
	"notewell/internal/service"
	"notewell/internal/store"
	"notewell/internal/utils"
	"notewell/models"
)

func (h *Handler) listNotes(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Str("func", "*Handler.listNotes").Msg("no user id in request context")
		writeError(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	tag := r.URL.Query().Get("tag")

	notes, err := h.services.NoteService.ListNotes(ctx, userID, tag)
	if err != nil {
		log.Err(err).Str("func", "*Handler.listNotes").Msg("error listing notes")
		writeError(w, "error listing notes", http.StatusInternalServerError)
		return
	}
	if notes == nil {
		notes = []models.Note{}
	}

	utils.WriteJSON(w, notes, http.StatusOK)
}

func (h *Handler) searchNotes(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Str("func", "*Handler.searchNotes").Msg("no user id in request context")
		writeError(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	query := r.URL.Query().Get("q")

	notes, err := h.services.NoteService.SearchNotes(ctx, userID, query)
	if err != nil {
		log.Err(err).Str("func", "*Handler.searchNotes").Msg("error searching notes")
		writeError(w, "error searching notes", http.StatusInternalServerError)
		return
	}
	if notes == nil {
		notes = []models.Note{}
	}

	utils.WriteJSON(w, notes, http.StatusOK)
}

func (h *Handler) listTags(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Str("func", "*Handler.listTags").Msg("no user id in request context")
		writeError(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	tags, err := h.services.NoteService.ListTags(ctx, userID)
	if err != nil {
		log.Err(err).Str("func", "*Handler.listTags").Msg("error listing tags")
		writeError(w, "error listing tags", http.StatusInternalServerError)
		return
	}
	if tags == nil {
		tags = []string{}
	}

	utils.WriteJSON(w, tags, http.StatusOK)
}

func (h *Handler) getNote(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Str("func", "*Handler.getNote").Msg("no user id in request context")
		writeError(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	noteID, err := noteIDFromURL(r)
	if err != nil {
		log.Err(err).Str("func", "*Handler.getNote").Msg("invalid note id")
		writeError(w, "invalid note id", http.StatusBadRequest)
		return
	}

	note, err := h.services.NoteService.GetNote(ctx, userID, noteID)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrNoteNotFound):
			log.Err(err).Str("func", "*Handler.getNote").Msg("note not found")
			writeError(w, "note not found", http.StatusNotFound)
		default:
			log.Err(err).Str("func", "*Handler.getNote").Msg("error getting note")
			writeError(w, "error getting note", http.StatusInternalServerError)
		}
		return
	}

	utils.WriteJSON(w, note, http.StatusOK)
}

func (h *Handler) createNote(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Str("func", "*Handler.createNote").Msg("no user id in request context")
		writeError(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	var draft models.NoteDraft
	if err := json.NewDecoder(r.Body).Decode(&draft); err != nil {
		log.Err(err).Str("func", "*Handler.createNote").Msg("Invalid JSON was passed")
		writeError(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	note, err := h.services.NoteService.CreateNote(ctx, userID, draft)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			log.Err(err).Str("func", "*Handler.createNote").Msg("invalid data provided")
			writeError(w, err.Error(), http.StatusBadRequest)
		default:
			log.Err(err).Str("func", "*Handler.createNote").Msg("error creating note")
			writeError(w, "error creating note", http.StatusInternalServerError)
		}
		return
	}

	utils.WriteJSON(w, note, http.StatusCreated)
}

func (h *Handler) updateNote(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Str("func", "*Handler.updateNote").Msg("no user id in request context")
		writeError(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	noteID, err := noteIDFromURL(r)
	if err != nil {
		log.Err(err).Str("func", "*Handler.updateNote").Msg("invalid note id")
		writeError(w, "invalid note id", http.StatusBadRequest)
		return
	}

	var draft models.NoteDraft
	if err := json.NewDecoder(r.Body).Decode(&draft); err != nil {
		log.Err(err).Str("func", "*Handler.updateNote").Msg("Invalid JSON was passed")
		writeError(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	note, err := h.services.NoteService.UpdateNote(ctx, userID, noteID, draft)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			log.Err(err).Str("func", "*Handler.updateNote").Msg("invalid data provided")
			writeError(w, err.Error(), http.StatusBadRequest)
		case errors.Is(err, store.ErrNoteNotFound):
			log.Err(err).Str("func", "*Handler.updateNote").Msg("note not found")
			writeError(w, "note not found", http.StatusNotFound)
		default:
			log.Err(err).Str("func", "*Handler.updateNote").Msg("error updating note")
			writeError(w, "error updating note", http.StatusInternalServerError)
		}
		return
	}

	utils.WriteJSON(w, note, http.StatusOK)
}

func (h *Handler) deleteNote(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Str("func", "*Handler.deleteNote").Msg("no user id in request context")
		writeError(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	noteID, err := noteIDFromURL(r)
	if err != nil {
		log.Err(err).Str("func", "*Handler.deleteNote").Msg("invalid note id")
		writeError(w, "invalid note id", http.StatusBadRequest)
		return
	}

	if err := h.services.NoteService.DeleteNote(ctx, userID, noteID); err != nil {
		switch {
		case errors.Is(err, store.ErrNoteNotFound):
			log.Err(err).Str("func", "*Handler.deleteNote").Msg("note not found")
			writeError(w, "note not found", http.StatusNotFound)
		default:
			log.Err(err).Str("func", "*Handler.deleteNote").Msg("error deleting note")
			writeError(w, "error deleting note", http.StatusInternalServerError)
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// noteIDFromURL parses the {id} URL parameter of note routes.
func noteIDFromURL(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
}
