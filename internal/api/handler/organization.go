package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/nordlys/outreach-admin/internal/api/request"
	"github.com/nordlys/outreach-admin/internal/api/response"
	"github.com/nordlys/outreach-admin/internal/core"
)

type Organization struct {
	svc      *core.OrganizationService
	accounts *core.EmailAccountService
}

func NewOrganization(svc *core.OrganizationService, accounts *core.EmailAccountService) *Organization {
	return &Organization{svc: svc, accounts: accounts}
}

func (h *Organization) List(w http.ResponseWriter, r *http.Request) {
	orgs, err := h.svc.List(r.Context())
	if err != nil {
		response.WriteError(w, http.StatusInternalServerError, err.Error())
		return
	}

	response.WriteJSON(w, http.StatusOK, orgs)
}

// Get returns the aggregate admin view. Sub-query failures are reported in
// the errors field of an otherwise-200 response; only a missing organization
// row fails the request.
func (h *Organization) Get(w http.ResponseWriter, r *http.Request) {
	id, err := request.RequireID(chi.URLParam(r, "id"))
	if err != nil {
		response.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	overview, err := h.svc.Overview(r.Context(), id)
	if err != nil {
		response.WriteError(w, http.StatusInternalServerError, err.Error())
		return
	}

	response.WriteJSON(w, http.StatusOK, overview)
}

func (h *Organization) ListEmailAccounts(w http.ResponseWriter, r *http.Request) {
	id, err := request.RequireID(chi.URLParam(r, "id"))
	if err != nil {
		response.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	pg := request.ParsePagination(r)

	accounts, hasMore, err := h.accounts.ListByOrg(r.Context(), id, pg.Limit, pg.Cursor)
	if err != nil {
		response.WriteError(w, http.StatusInternalServerError, err.Error())
		return
	}

	var nextCursor string
	if hasMore && len(accounts) > 0 {
		nextCursor = accounts[len(accounts)-1].ID
	}
	response.WritePaginated(w, http.StatusOK, accounts, nextCursor, hasMore)
}
