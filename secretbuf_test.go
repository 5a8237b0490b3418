package schiavinato

import "testing"

func TestSecretIntsSetGetSlice(t *testing.T) {
	s := newSecretInts(4)
	defer s.destroy()

	vals := []int{0, 1, 1337, 2052}
	for i, v := range vals {
		s.set(i, v)
	}
	for i, v := range vals {
		if got := s.get(i); got != v {
			t.Fatalf("get(%d) = %d, want %d", i, got, v)
		}
	}

	got := s.slice()
	for i, v := range vals {
		if got[i] != v {
			t.Fatalf("slice()[%d] = %d, want %d", i, got[i], v)
		}
	}
}

func TestSecretIntsDestroyZeroes(t *testing.T) {
	s := newSecretInts(2)
	s.set(0, 99)
	s.set(1, 100)
	raw := s.buf.Bytes()

	s.destroy()

	for _, b := range raw {
		if b != 0 {
			t.Fatal("destroy did not zero the backing buffer")
		}
	}
}
