package password

import "testing"

func TestHashAndVerify(t *testing.T) {
	h := NewHasher(4)

	hash, err := h.Hash("secret")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if hash == "secret" {
		t.Fatal("hash must not equal the plain password")
	}
	if !h.Verify("secret", hash) {
		t.Error("right password should verify")
	}
	if h.Verify("wrong", hash) {
		t.Error("wrong password should not verify")
	}
}

func TestHashesAreSalted(t *testing.T) {
	h := NewHasher(4)
	a, err := h.Hash("secret")
	if err != nil {
		t.Fatal(err)
	}
	b, err := h.Hash("secret")
	if err != nil {
		t.Fatal(err)
	}
	if a == b {
		t.Error("two hashes of the same password should differ")
	}
}

func TestCostOutOfRangeFallsBack(t *testing.T) {
	for _, cost := range []int{-1, 0, 99} {
		h := NewHasher(cost)
		hash, err := h.Hash("secret")
		if err != nil {
			t.Fatalf("cost %d: %v", cost, err)
		}
		if !h.Verify("secret", hash) {
			t.Errorf("cost %d: hash does not verify", cost)
		}
	}
}
