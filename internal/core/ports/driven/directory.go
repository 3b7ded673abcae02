package driven

import (
	"context"

	"github.com/saran-io/gdrive-hub-integration/internal/core/domain"
)

// ContactDirectory resolves recipient email addresses to CRM contacts.
// Implemented by the HubSpot connector.
type ContactDirectory interface {
	// FindContactByEmail performs an exact-match search on the email
	// property. When multiple contacts match, the first result in API
	// order wins. Returns domain.ErrContactNotFound when nothing matches.
	FindContactByEmail(ctx context.Context, email string) (*domain.Contact, error)
}
