package memory

import (
	"context"
	"errors"
	"testing"

	"github.com/mbrell/centsible/centsible-backend/internal/domain"
)

func TestKV_GetMissingKey(t *testing.T) {
	kv := New()

	_, err := kv.Get(context.Background(), "transactions")
	if !errors.Is(err, domain.ErrKeyNotFound) {
		t.Errorf("Expected ErrKeyNotFound, got %v", err)
	}
}

func TestKV_PutAndGet(t *testing.T) {
	kv := New()
	ctx := context.Background()

	if err := kv.Put(ctx, map[string][]byte{
		"transactions": []byte(`[1]`),
		"goals":        []byte(`[2]`),
	}); err != nil {
		t.Fatalf("Put: %v", err)
	}

	for key, want := range map[string]string{"transactions": "[1]", "goals": "[2]"} {
		got, err := kv.Get(ctx, key)
		if err != nil {
			t.Fatalf("Get(%s): %v", key, err)
		}
		if string(got) != want {
			t.Errorf("Get(%s) = %s, want %s", key, got, want)
		}
	}
}

func TestKV_GetReturnsCopy(t *testing.T) {
	kv := New()
	ctx := context.Background()

	kv.Put(ctx, map[string][]byte{"transactions": []byte(`abc`)})

	first, _ := kv.Get(ctx, "transactions")
	first[0] = 'X'

	second, _ := kv.Get(ctx, "transactions")
	if string(second) != "abc" {
		t.Error("Mutating a returned value must not affect the stored value")
	}
}

func TestKV_PutCopiesInput(t *testing.T) {
	kv := New()
	ctx := context.Background()

	value := []byte(`abc`)
	kv.Put(ctx, map[string][]byte{"transactions": value})
	value[0] = 'X'

	got, _ := kv.Get(ctx, "transactions")
	if string(got) != "abc" {
		t.Error("Mutating the input after Put must not affect the stored value")
	}
}

func TestKV_PutOverwrites(t *testing.T) {
	kv := New()
	ctx := context.Background()

	kv.Put(ctx, map[string][]byte{"transactions": []byte(`old`)})
	kv.Put(ctx, map[string][]byte{"transactions": []byte(`new`)})

	got, _ := kv.Get(ctx, "transactions")
	if string(got) != "new" {
		t.Errorf("Expected overwritten value, got %s", got)
	}
}
