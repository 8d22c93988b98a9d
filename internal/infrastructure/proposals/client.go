package proposals

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"seguradora_xpto/internal/domain/entities"
	"seguradora_xpto/internal/usecase/interfaces"
)

const requestTimeout = 30 * time.Second

var ErrMissingBaseURL = errors.New("missing proposta service base url")

// Client queries the proposal service over HTTP. It is the contracting
// service's synchronous source of truth for proposal status.
type Client struct {
	httpClient *http.Client
	baseURL    string
}

var _ interfaces.IProposalClient = (*Client)(nil)

func NewClient(baseURL string) (*Client, error) {
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		return nil, ErrMissingBaseURL
	}
	return &Client{
		httpClient: &http.Client{Timeout: requestTimeout},
		baseURL:    baseURL,
	}, nil
}

// GetProposal fetches a proposal by id. A remote 404 yields a zero-value
// summary with a nil error; any other non-2xx response is an error.
func (c *Client) GetProposal(ctx context.Context, proposalID string) (entities.ProposalSummary, error) {
	url := fmt.Sprintf("%s/v1/propostas/%s", c.baseURL, proposalID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return entities.ProposalSummary{}, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Printf("[contratacao][client] proposta fetch failed proposal_id=%s err=%v", proposalID, err)
		return entities.ProposalSummary{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		log.Printf("[contratacao][client] proposta not found proposal_id=%s", proposalID)
		return entities.ProposalSummary{}, nil
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		log.Printf("[contratacao][client] proposta fetch unexpected status proposal_id=%s status=%d", proposalID, resp.StatusCode)
		return entities.ProposalSummary{}, fmt.Errorf("proposta service returned status %d", resp.StatusCode)
	}

	var summary entities.ProposalSummary
	if err := json.NewDecoder(resp.Body).Decode(&summary); err != nil {
		return entities.ProposalSummary{}, err
	}

	log.Printf("[contratacao][client] proposta fetched proposal_id=%s status=%s", proposalID, summary.Status)
	return summary, nil
}
