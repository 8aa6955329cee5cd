package catalog

import (
	"errors"
	"net/http"

	"go.uber.org/zap"

	"InventoryAPI/pkg/kit"
)

const msgNotFound = "Product not found"

type Server struct {
	Store Store
	Log   *zap.Logger
}

func (s *Server) log() *zap.Logger {
	if s.Log == nil {
		return zap.NewNop()
	}
	return s.Log
}

func (s *Server) list(w http.ResponseWriter, _ *http.Request) {
	kit.WriteJSON(w, http.StatusOK, s.Store.List())
}

func (s *Server) create(w http.ResponseWriter, r *http.Request) {
	f, err := decodeProductFields(w, r)
	if err != nil {
		s.writeRequestError(w, err)
		return
	}

	id := s.Store.Create(f)
	s.log().Debug("product created", zap.Int64("id", id), zap.String("sku", f.SKU))

	kit.WriteJSON(w, http.StatusOK, id)
}

func (s *Server) get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		s.writeRequestError(w, err)
		return
	}

	p, ok := s.Store.Get(id)
	if !ok {
		s.notFound(w, "get", id)
		return
	}
	kit.WriteJSON(w, http.StatusOK, p)
}

// update takes the identifier from the path only; the body cannot carry one.
func (s *Server) update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		s.writeRequestError(w, err)
		return
	}

	f, err := decodeProductFields(w, r)
	if err != nil {
		s.writeRequestError(w, err)
		return
	}

	if !s.Store.Update(id, f) {
		s.notFound(w, "update", id)
		return
	}
	s.log().Debug("product updated", zap.Int64("id", id))
	kit.WriteOK(w)
}

func (s *Server) delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		s.writeRequestError(w, err)
		return
	}

	if !s.Store.Delete(id) {
		s.notFound(w, "delete", id)
		return
	}
	s.log().Debug("product deleted", zap.Int64("id", id))
	kit.WriteOK(w)
}

func (s *Server) notFound(w http.ResponseWriter, op string, id int64) {
	s.log().Info("product not found", zap.String("op", op), zap.Int64("id", id))
	kit.WriteError(w, http.StatusNotFound, msgNotFound)
}

func (s *Server) writeRequestError(w http.ResponseWriter, err error) {
	var ve ValidationError
	switch {
	case errors.As(err, &ve):
		kit.WriteError(w, http.StatusUnprocessableEntity, []FieldError(ve))
	case errors.Is(err, errBodyTooLarge):
		kit.WriteError(w, http.StatusRequestEntityTooLarge, err.Error())
	default:
		s.log().Error("unexpected request error", zap.Error(err))
		kit.WriteError(w, http.StatusInternalServerError, "server error")
	}
}
