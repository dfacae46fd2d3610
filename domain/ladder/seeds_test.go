package ladder

import "testing"

func TestSeedsCommitment(t *testing.T) {
	s, err := NewSeeds("alice", 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(s.Server) != 64 {
		t.Fatalf("expected 64 hex chars of server seed, got %d", len(s.Server))
	}
	if !VerifyCommitment(s.Server, s.Commitment()) {
		t.Fatal("commitment does not match its own server seed")
	}
	if VerifyCommitment(s.Server+"x", s.Commitment()) {
		t.Fatal("commitment matched a different server seed")
	}
}

func TestNewSeedsAreFresh(t *testing.T) {
	a, err := NewSeeds("alice", 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	b, err := NewSeeds("alice", 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if a.Server == b.Server {
		t.Fatal("two calls produced the same server seed")
	}
}

func TestVerifyLayout(t *testing.T) {
	seeds := Seeds{Server: "server", Client: "client", Nonce: 7}
	ladders, err := Build(5, seeds.Shuffler())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := VerifyLayout(seeds, ladders); err != nil {
		t.Fatalf("layout built from the seeds failed verification: %v", err)
	}

	// swap the first two packets of the bottom rung
	p := ladders[0].packets
	tampered := make([]Ladder, len(ladders))
	copy(tampered, ladders)
	tampered[0].packets = [PacketsPerRung]Packet{p[1], p[0], p[2]}
	if err := VerifyLayout(seeds, tampered); err == nil {
		t.Fatal("expected tampered layout to fail verification")
	}

	if err := VerifyLayout(seeds, nil); err == nil {
		t.Fatal("expected error for empty layout")
	}
}
