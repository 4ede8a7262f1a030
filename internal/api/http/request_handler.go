package http

import (
	"net/http"

	"github.com/Charan908515/book-credit-exchange/internal/domain"
	"github.com/Charan908515/book-credit-exchange/internal/service"
)

type RequestHandler struct {
	requestSvc service.RequestService
}

func NewRequestHandler(requestSvc service.RequestService) *RequestHandler {
	return &RequestHandler{requestSvc: requestSvc}
}

type createRequestBody struct {
	BookID int32 `json:"bookId"`
}

func (h *RequestHandler) Create(w http.ResponseWriter, r *http.Request) {
	var body createRequestBody
	if !decodeBody(w, r, &body) {
		return
	}
	claims := claimsFrom(r.Context())

	req, err := h.requestSvc.CreateRequest(r.Context(), body.BookID, claims.UserID)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, req)
}

type updateRequestBody struct {
	Status        string `json:"status"`
	MeetupDetails string `json:"meetupDetails"`
}

func (h *RequestHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	var body updateRequestBody
	if !decodeBody(w, r, &body) {
		return
	}

	req, err := h.requestSvc.UpdateRequestStatus(r.Context(), id, domain.RequestStatus(body.Status), body.MeetupDetails)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, req)
}

func (h *RequestHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	if err := h.requestSvc.CancelRequest(r.Context(), id); err != nil {
		respondError(w, err)
		return
	}
	respondMessage(w, http.StatusOK, "Request cancelled successfully")
}

func (h *RequestHandler) Incoming(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := pathID(w, r, "userId")
	if !ok {
		return
	}
	reqs, err := h.requestSvc.ListIncoming(r.Context(), ownerID)
	if err != nil {
		respondError(w, err)
		return
	}
	if reqs == nil {
		reqs = []domain.Request{}
	}
	respondJSON(w, http.StatusOK, reqs)
}

func (h *RequestHandler) Outgoing(w http.ResponseWriter, r *http.Request) {
	requesterID, ok := pathID(w, r, "userId")
	if !ok {
		return
	}
	reqs, err := h.requestSvc.ListOutgoing(r.Context(), requesterID)
	if err != nil {
		respondError(w, err)
		return
	}
	if reqs == nil {
		reqs = []domain.Request{}
	}
	respondJSON(w, http.StatusOK, reqs)
}
