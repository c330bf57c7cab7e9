package scaledmail

// Mailbox is one pre-configured mailbox inside a vendor inventory item.
type Mailbox struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Alias     string `json:"alias"`
}

type Pricing struct {
	OneTimePrice float64 `json:"oneTimePrice"`
	MonthlyPrice float64 `json:"monthlyPrice"`
}

// PreWarmInbox is a purchasable domain bundle with an existing sending
// reputation. Inventory is never persisted locally.
type PreWarmInbox struct {
	ID           string    `json:"id"`
	Domain       string    `json:"domain"`
	WarmupAge    int       `json:"warmup_age"`
	MailboxCount int       `json:"emailMailboxCount"`
	Pricing      Pricing   `json:"pricing"`
	Mailboxes    []Mailbox `json:"emailMailbox,omitempty"`
}

// PreWarmInboxes is the vendor's inventory partitioned by mail provider.
type PreWarmInboxes struct {
	Total   int            `json:"total"`
	Google  []PreWarmInbox `json:"google"`
	Outlook []PreWarmInbox `json:"outlook"`
}

// DomainOrder is one domain in a purchase payload.
type DomainOrder struct {
	ID       string `json:"id"`
	Domain   string `json:"domain"`
	Redirect string `json:"redirect,omitempty"`
}

// PurchaseOrder is the vendor purchase payload. A purchase has real
// financial effect; the vendor offers no de-duplication key.
type PurchaseOrder struct {
	Tag     string        `json:"tag"`
	Domains []DomainOrder `json:"domains"`
}
