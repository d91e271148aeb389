package track

import "testing"

func TestRegister_Passports(t *testing.T) {
	tr := New(5)

	if _, ok := tr.LookupPassport("Иванов Иван Иванович"); ok {
		t.Fatal("lookup on empty tracker succeeded")
	}
	if !tr.Register("Иванов Иван Иванович", "4512 345678") {
		t.Fatal("first registration failed")
	}
	if tr.Register("Иванов Иван Иванович", "4512 999999") {
		t.Fatal("second registration for the same name succeeded")
	}

	p, ok := tr.LookupPassport("Иванов Иван Иванович")
	if !ok || p != "4512 345678" {
		t.Errorf("lookup = %q, %v", p, ok)
	}
	if tr.PassportUnique("4512 345678") {
		t.Error("registered passport reported unique")
	}
	if !tr.PassportUnique("4512 000000") {
		t.Error("unseen passport reported taken")
	}
}

func TestRegister_PassportCollision(t *testing.T) {
	tr := New(5)
	if !tr.Register("Иванов Иван Иванович", "4512 345678") {
		t.Fatal("first registration failed")
	}
	if tr.Register("Петров Петр Петрович", "4512 345678") {
		t.Fatal("same passport registered under a second name")
	}
	if _, ok := tr.LookupPassport("Петров Петр Петрович"); ok {
		t.Error("rejected registration left a binding behind")
	}
	if tr.Stats().UniquePassports != 1 {
		t.Errorf("UniquePassports = %d, want 1", tr.Stats().UniquePassports)
	}
}

func TestRegisterSNILS(t *testing.T) {
	tr := New(5)
	if !tr.RegisterSNILS("Иванов Иван Иванович", "4512 345678", "112-233-445 95") {
		t.Fatal("first SNILS registration failed")
	}
	if tr.RegisterSNILS("Иванов Иван Иванович", "4512 345678", "999-999-999 00") {
		t.Fatal("second SNILS registration for the same identity succeeded")
	}

	s, ok := tr.LookupSNILS("Иванов Иван Иванович", "4512 345678")
	if !ok || s != "112-233-445 95" {
		t.Errorf("LookupSNILS = %q, %v", s, ok)
	}
	if _, ok := tr.LookupSNILS("Иванов Иван Иванович", "4512 000000"); ok {
		t.Error("SNILS found for a different passport")
	}
}

func TestUseCard_Limit(t *testing.T) {
	tr := New(3)
	card := "4000 0000 0000 0002"

	for i := 0; i < 3; i++ {
		if !tr.UseCard(card) {
			t.Fatalf("use %d rejected under limit", i+1)
		}
	}
	if tr.CanUseCard(card) {
		t.Error("card at limit reported usable")
	}
	if tr.UseCard(card) {
		t.Error("use past limit accepted")
	}
	if got := tr.Stats().TotalCardUsage; got != 3 {
		t.Errorf("TotalCardUsage = %d, want 3", got)
	}
}

func TestForceUseCard(t *testing.T) {
	tr := New(1)
	card := "4000 0000 0000 0002"

	tr.ForceUseCard(card)
	if tr.ForcedUses() != 0 {
		t.Errorf("forced uses after under-limit force = %d", tr.ForcedUses())
	}
	tr.ForceUseCard(card)
	if tr.ForcedUses() != 1 {
		t.Errorf("forced uses after over-limit force = %d", tr.ForcedUses())
	}
	if got := tr.Stats().TotalCardUsage; got != 2 {
		t.Errorf("TotalCardUsage = %d, want 2", got)
	}
}

func TestReusableCards_Order(t *testing.T) {
	tr := New(2)
	for _, card := range []string{"c1", "c2", "c3"} {
		tr.UseCard(card)
	}
	tr.UseCard("c2") // c2 reaches the limit

	got := tr.ReusableCards()
	if len(got) != 2 || got[0] != "c1" || got[1] != "c3" {
		t.Errorf("ReusableCards = %v, want [c1 c3]", got)
	}
}

func TestStats(t *testing.T) {
	tr := New(5)
	tr.Register("Иванов Иван Иванович", "4512 345678")
	tr.Register("Петров Петр Петрович", "4513 111111")
	tr.RegisterSNILS("Иванов Иван Иванович", "4512 345678", "112-233-445 95")
	tr.UseCard("c1")
	tr.UseCard("c1")
	tr.UseCard("c2")

	s := tr.Stats()
	if s.UniquePassports != 2 || s.UniqueClients != 1 || s.CardsInUse != 2 || s.TotalCardUsage != 3 {
		t.Errorf("Stats = %+v", s)
	}
}
