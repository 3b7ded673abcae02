package hubspot

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/saran-io/gdrive-hub-integration/internal/core/domain"
	"github.com/saran-io/gdrive-hub-integration/internal/core/ports/driven"
)

const contactSearchPath = "/crm/v3/objects/contacts/search"

// Ensure Client implements the port.
var _ driven.ContactDirectory = (*Client)(nil)

// searchRequest is the CRM search request format: one filter group with
// a single equality filter on the email property.
type searchRequest struct {
	FilterGroups []filterGroup `json:"filterGroups"`
}

type filterGroup struct {
	Filters []filter `json:"filters"`
}

type filter struct {
	PropertyName string `json:"propertyName"`
	Operator     string `json:"operator"`
	Value        string `json:"value"`
}

// searchResponse is the CRM search response format.
type searchResponse struct {
	Results []struct {
		ID string `json:"id"`
	} `json:"results"`
}

// FindContactByEmail performs an exact-match search on the email
// property. When multiple contacts match, the first result in API order
// wins; disambiguation is deliberately not attempted. Returns
// domain.ErrContactNotFound when nothing matches.
func (c *Client) FindContactByEmail(ctx context.Context, email string) (*domain.Contact, error) {
	reqBody, err := json.Marshal(searchRequest{
		FilterGroups: []filterGroup{{
			Filters: []filter{{
				PropertyName: "email",
				Operator:     "EQ",
				Value:        email,
			}},
		}},
	})
	if err != nil {
		return nil, fmt.Errorf("marshal search request: %w", err)
	}

	resp, err := c.post(ctx, contactSearchPath, "application/json", reqBody)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, newStatusError(OpSearchContacts, resp.StatusCode, body)
	}

	var result searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("decode search response: %w", err)
	}

	if len(result.Results) == 0 {
		return nil, fmt.Errorf("%w: %s", domain.ErrContactNotFound, email)
	}

	return &domain.Contact{ID: result.Results[0].ID}, nil
}
