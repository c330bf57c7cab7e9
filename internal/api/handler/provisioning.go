package handler

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/nordlys/outreach-admin/internal/api/request"
	"github.com/nordlys/outreach-admin/internal/api/response"
	"github.com/nordlys/outreach-admin/internal/core"
	"github.com/nordlys/outreach-admin/internal/scaledmail"
)

type Provisioning struct {
	svc *core.ProvisioningService
}

func NewProvisioning(svc *core.ProvisioningService) *Provisioning {
	return &Provisioning{svc: svc}
}

// vendorStatus maps a vendor error to the HTTP status to echo back. The
// vendor's own status passes through; anything else is a 500.
func vendorStatus(err error) int {
	var se *scaledmail.StatusError
	if errors.As(err, &se) {
		return se.Status
	}
	return http.StatusInternalServerError
}

func (h *Provisioning) Inventory(w http.ResponseWriter, r *http.Request) {
	inboxes, err := h.svc.Inventory(r.Context())
	if err != nil {
		response.WriteError(w, vendorStatus(err), err.Error())
		return
	}

	response.WriteJSON(w, http.StatusOK, inboxes)
}

func (h *Provisioning) DomainMailboxes(w http.ResponseWriter, r *http.Request) {
	domainID, err := request.RequireID(chi.URLParam(r, "domainId"))
	if err != nil {
		response.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	body, err := h.svc.DomainMailboxes(r.Context(), domainID)
	if err != nil {
		response.WriteError(w, vendorStatus(err), err.Error())
		return
	}

	response.WriteJSON(w, http.StatusOK, body)
}

// purchaseResponse matches the shape the admin UI expects:
// emailAccountsCreated is a count on full success and false when the vendor
// charge went through but local bookkeeping failed.
type purchaseResponse struct {
	Success              bool   `json:"success"`
	PurchaseComplete     bool   `json:"purchaseComplete"`
	EmailAccountsCreated any    `json:"emailAccountsCreated"`
	Error                string `json:"error,omitempty"`
}

func (h *Provisioning) Purchase(w http.ResponseWriter, r *http.Request) {
	var req request.PurchasePreWarmInboxes
	if err := request.Decode(r, &req); err != nil {
		response.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	input := core.PurchaseInput{OrgID: req.OrgID, Tag: req.Tag}
	for _, d := range req.Domains {
		sel := core.DomainSelection{ID: d.ID, Domain: d.Domain, Redirect: d.Redirect}
		for _, m := range d.Mailboxes {
			sel.Mailboxes = append(sel.Mailboxes, scaledmail.Mailbox{
				FirstName: m.FirstName,
				LastName:  m.LastName,
				Alias:     m.Alias,
			})
		}
		input.Domains = append(input.Domains, sel)
	}

	result, err := h.svc.Purchase(r.Context(), input)
	if err != nil {
		if errors.Is(err, core.ErrEmptySelection) || errors.Is(err, core.ErrMissingOrgID) {
			response.WriteError(w, http.StatusBadRequest, err.Error())
			return
		}
		response.WriteError(w, vendorStatus(err), err.Error())
		return
	}

	resp := purchaseResponse{
		Success:              true,
		PurchaseComplete:     true,
		EmailAccountsCreated: result.AccountsCreated,
	}
	if result.BookkeepingErr != "" {
		resp.EmailAccountsCreated = false
		resp.Error = "Purchase successful but failed to create email account records: " + result.BookkeepingErr
	}

	response.WriteJSON(w, http.StatusOK, resp)
}
