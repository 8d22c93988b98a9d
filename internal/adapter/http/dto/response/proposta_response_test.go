package response

import (
	"testing"

	"seguradora_xpto/internal/domain/entities"
)

func TestFromProposal(t *testing.T) {
	proposal, err := entities.NewProposal("Maria Souza", "123.456.789-09", "Vida", 100000, 500)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	resp := FromProposal(proposal)

	if resp.ID != proposal.ID() {
		t.Fatalf("unexpected id: %s", resp.ID)
	}
	if resp.IdentityNumber != "12345678909" {
		t.Fatalf("expected canonical identity number, got %s", resp.IdentityNumber)
	}
	if resp.Category != "Vida" {
		t.Fatalf("unexpected category: %s", resp.Category)
	}
	if resp.Status != int(entities.ProposalStatusEmAnalise) {
		t.Fatalf("unexpected status: %d", resp.Status)
	}
	if resp.StatusLabel != "em_analise" {
		t.Fatalf("unexpected status label: %s", resp.StatusLabel)
	}
	if resp.UpdatedAt != nil {
		t.Fatal("expected nil updatedAt for a new proposal")
	}
}

func TestFromProposals(t *testing.T) {
	first, _ := entities.NewProposal("Maria Souza", "123.456.789-09", "Vida", 100000, 500)
	second, _ := entities.NewProposal("Joao Lima", "123.456.789-09", "Auto", 50000, 250)

	out := FromProposals([]entities.Proposal{first, second})

	if len(out) != 2 {
		t.Fatalf("expected 2 responses, got %d", len(out))
	}
	if out[1].Category != "Auto" {
		t.Fatalf("unexpected category: %s", out[1].Category)
	}
}
