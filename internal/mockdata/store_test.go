package mockdata

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"bankwise_support_backend/platform/logger"
)

func writeEntityFile[T any](t *testing.T, dir, name string, records []T) {
	t.Helper()
	data, err := json.Marshal(records)
	if err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, name), data, 0o644); err != nil {
		t.Fatal(err)
	}
}

func openStore(t *testing.T, dir string) *Store {
	t.Helper()
	s, err := Open(dir, NewSeededGenerator(1), logger.New("development"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	return s
}

func TestOpenGeneratesEveryMissingDataFile(t *testing.T) {
	dir := t.TempDir()
	s := openStore(t, dir)

	if len(s.Accounts()) == 0 {
		t.Fatal("accounts not generated")
	}
	for _, file := range dataFiles {
		if _, err := os.Stat(filepath.Join(dir, file)); err != nil {
			t.Fatalf("data file %s not written: %v", file, err)
		}
	}
}

func TestOpenRegeneratesCorruptFile(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "accounts.json"), []byte("[{broken"), 0o644); err != nil {
		t.Fatal(err)
	}

	s := openStore(t, dir)
	if len(s.Accounts()) == 0 {
		t.Fatal("corrupt accounts file must fall back to generation")
	}
}

func TestAccountByNumberMatchesExactly(t *testing.T) {
	dir := t.TempDir()
	writeEntityFile(t, dir, "accounts.json", []Account{
		{AccountNumber: "123412345678", CustomerName: "Aarav Sharma"},
		{AccountNumber: "567898765432", CustomerName: "Diya Patel"},
	})
	s := openStore(t, dir)

	account, ok := s.AccountByNumber("567898765432")
	if !ok {
		t.Fatal("existing account not found")
	}
	if account.CustomerName != "Diya Patel" {
		t.Fatalf("wrong account returned: %+v", account)
	}

	if _, ok := s.AccountByNumber("5678"); ok {
		t.Fatal("partial account numbers must not match")
	}
}

func TestBlockCardByLast4BlocksAllMatchesAndPersists(t *testing.T) {
	dir := t.TempDir()
	writeEntityFile(t, dir, "cards.json", []Card{
		{CardNumber: "****4242", AccountNumber: "A", CardStatus: "ACTIVE"},
		{CardNumber: "****4242", AccountNumber: "B", CardStatus: "ACTIVE"},
		{CardNumber: "****9999", AccountNumber: "A", CardStatus: "ACTIVE"},
	})
	s := openStore(t, dir)

	if !s.BlockCardByLast4("4242") {
		t.Fatal("block reported no match")
	}
	if s.BlockCardByLast4("0000") {
		t.Fatal("block must report false for an unknown suffix")
	}

	for _, c := range s.Cards() {
		want := "ACTIVE"
		if c.CardNumber == "****4242" {
			want = "BLOCKED"
		}
		if c.CardStatus != want {
			t.Fatalf("card %s on account %s: status %q, want %q", c.CardNumber, c.AccountNumber, c.CardStatus, want)
		}
	}

	// A fresh store over the same directory must see the block.
	reopened := openStore(t, dir)
	card, ok := reopened.CardByLast4("4242")
	if !ok || card.CardStatus != "BLOCKED" {
		t.Fatalf("block not persisted: %+v", card)
	}
}

func TestTransactionsByAccountReturnsNewestFirstUpToLimit(t *testing.T) {
	dir := t.TempDir()
	writeEntityFile(t, dir, "transactions.json", []Transaction{
		{ID: "TXN1", AccountNumber: "ACC1", TransactionDate: "2025-03-01T10:00:00Z"},
		{ID: "TXN2", AccountNumber: "ACC1", TransactionDate: "2025-05-01T10:00:00Z"},
		{ID: "TXN3", AccountNumber: "ACC1", TransactionDate: "2025-04-01T10:00:00Z"},
		{ID: "TXN4", AccountNumber: "ACC2", TransactionDate: "2025-06-01T10:00:00Z"},
	})
	s := openStore(t, dir)

	result := s.TransactionsByAccount("ACC1", 2)
	if len(result) != 2 {
		t.Fatalf("limit not applied: got %d transactions", len(result))
	}
	if result[0].ID != "TXN2" || result[1].ID != "TXN3" {
		t.Fatalf("wrong order: got %s, %s", result[0].ID, result[1].ID)
	}

	if got := s.TransactionsByAccount("ACC3", 5); got != nil {
		t.Fatalf("unknown account must return nothing, got %d", len(got))
	}
}

func TestBranchesByCityIsCaseInsensitiveAndOrderedByName(t *testing.T) {
	dir := t.TempDir()
	writeEntityFile(t, dir, "branches.json", []Branch{
		{Name: "BOB Pune Road", City: "Pune"},
		{Name: "BOB Pune Main", City: "Pune"},
		{Name: "BOB Delhi Main", City: "Delhi"},
	})
	s := openStore(t, dir)

	result := s.BranchesByCity("PUNE", 0)
	if len(result) != 2 {
		t.Fatalf("got %d branches, want 2", len(result))
	}
	if result[0].Name != "BOB Pune Main" {
		t.Fatalf("branches not ordered by name: %s first", result[0].Name)
	}
}

func TestFDRatesByTenureFiltersAndSortsAscending(t *testing.T) {
	dir := t.TempDir()
	writeEntityFile(t, dir, "fd_rates.json", []FDRate{
		{Tenure: 365, Rate: 7.1, CustomerType: "NORMAL"},
		{Tenure: 30, Rate: 4.5, CustomerType: "NORMAL"},
		{Tenure: 365, Rate: 7.6, CustomerType: "SENIOR_CITIZEN"},
	})
	s := openStore(t, dir)

	all := s.FDRatesByTenure(0)
	if len(all) != 3 {
		t.Fatalf("got %d slabs, want 3", len(all))
	}
	if all[0].Tenure != 30 {
		t.Fatalf("slabs not sorted by tenure, first is %d", all[0].Tenure)
	}

	year := s.FDRatesByTenure(365)
	if len(year) != 2 {
		t.Fatalf("tenure filter returned %d slabs, want 2", len(year))
	}
	for _, r := range year {
		if r.Tenure != 365 {
			t.Fatalf("filter leaked tenure %d", r.Tenure)
		}
	}
}

func TestUpdateDisputeReplacesByTicket(t *testing.T) {
	dir := t.TempDir()
	writeEntityFile(t, dir, "disputes.json", []Dispute{
		{TicketID: "DISPUTE10001", Status: "OPEN"},
	})
	s := openStore(t, dir)

	updated := Dispute{TicketID: "DISPUTE10001", Status: "APPROVED"}
	if !s.UpdateDispute(updated) {
		t.Fatal("update failed for a known ticket")
	}
	d, _ := s.DisputeByTicket("DISPUTE10001")
	if d.Status != "APPROVED" {
		t.Fatalf("status not replaced: %q", d.Status)
	}

	if s.UpdateDispute(Dispute{TicketID: "DISPUTE99999"}) {
		t.Fatal("update must fail for an unknown ticket")
	}
}

func TestRecordsBoundsSnapshotAndRejectsUnknownEntities(t *testing.T) {
	dir := t.TempDir()
	s := openStore(t, dir)

	records, ok := s.Records("accounts", 3).([]Account)
	if !ok {
		t.Fatalf("unexpected record type %T", s.Records("accounts", 3))
	}
	if len(records) != 3 {
		t.Fatalf("limit not applied: got %d", len(records))
	}

	if s.Records("nonsense", 10) != nil {
		t.Fatal("unknown entity must return nil")
	}
}

func TestSeededGeneratorProducesStableIdentity(t *testing.T) {
	a := NewSeededGenerator(42).Accounts()
	b := NewSeededGenerator(42).Accounts()

	if len(a) != len(b) {
		t.Fatalf("lengths differ: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i].AccountNumber != b[i].AccountNumber || a[i].CustomerName != b[i].CustomerName {
			t.Fatalf("account %d differs between identically seeded generators", i)
		}
	}
}
