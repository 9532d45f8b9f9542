package registry

import (
	"errors"
	"strings"
	"testing"
)

type counter struct {
	n int
}

func TestSingletonFactoryReturnsSameInstance(t *testing.T) {
	r := New()

	built := 0
	r.RegisterFactory("counter", func() any {
		built++
		return &counter{}
	}, true)

	a, err := r.Get("counter")
	if err != nil {
		t.Fatalf("first get: %v", err)
	}
	b, err := r.Get("counter")
	if err != nil {
		t.Fatalf("second get: %v", err)
	}

	if a != b {
		t.Fatal("singleton factory produced two distinct instances")
	}
	if built != 1 {
		t.Fatalf("factory ran %d times, want 1", built)
	}
}

func TestNonSingletonFactoryBuildsEachTime(t *testing.T) {
	r := New()

	r.RegisterFactory("counter", func() any { return &counter{} }, false)

	a, _ := r.Get("counter")
	b, _ := r.Get("counter")
	if a == b {
		t.Fatal("non-singleton factory returned a cached instance")
	}
}

func TestInstancePromotedToSingleton(t *testing.T) {
	r := New()

	c := &counter{n: 7}
	r.RegisterInstance("counter", c)

	got, err := Resolve[*counter](r, "counter")
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if got != c {
		t.Fatal("expected the registered instance back")
	}

	again, _ := Resolve[*counter](r, "counter")
	if again != c {
		t.Fatal("expected the same instance on repeated lookups")
	}
}

func TestClearForgetsEverything(t *testing.T) {
	r := New()

	r.RegisterInstance("a", &counter{})
	r.RegisterFactory("b", func() any { return &counter{} }, true)
	if _, err := r.Get("b"); err != nil {
		t.Fatalf("get before clear: %v", err)
	}

	r.Clear()

	for _, key := range []string{"a", "b"} {
		if r.Has(key) {
			t.Fatalf("Has(%q) = true after Clear", key)
		}
		if _, err := r.Get(key); !errors.Is(err, ErrNotRegistered) {
			t.Fatalf("Get(%q) after Clear = %v, want ErrNotRegistered", key, err)
		}
	}
}

func TestGetUnknownKeyNamesKey(t *testing.T) {
	r := New()

	_, err := r.Get("missing")
	if !errors.Is(err, ErrNotRegistered) {
		t.Fatalf("expected ErrNotRegistered, got %v", err)
	}
	if want := `"missing"`; !strings.Contains(err.Error(), want) {
		t.Fatalf("error %q does not name the key", err)
	}
}

func TestRegisterZero(t *testing.T) {
	r := New()

	RegisterZero[counter](r, "counter")

	got, err := Resolve[*counter](r, "counter")
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if got.n != 0 {
		t.Fatalf("expected zero value, got %+v", got)
	}
}

func TestResolveTypeMismatch(t *testing.T) {
	r := New()
	r.RegisterInstance("counter", "not a counter")

	if _, err := Resolve[*counter](r, "counter"); err == nil {
		t.Fatal("expected a type mismatch error")
	}
}

func TestDefaultRegistryLazyAndReplaceable(t *testing.T) {
	old := defaultRegistry
	defaultRegistry = nil
	t.Cleanup(func() { defaultRegistry = old })

	d := Default()
	if d == nil {
		t.Fatal("Default returned nil")
	}
	if Default() != d {
		t.Fatal("Default is not stable across calls")
	}

	next := New()
	SetDefault(next)
	if Default() != next {
		t.Fatal("SetDefault did not replace the default registry")
	}
}
