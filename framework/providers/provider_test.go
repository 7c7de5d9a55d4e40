package providers_test

import (
	"errors"
	"testing"

	"github.com/brendanbates89/dot/framework/container"
	"github.com/brendanbates89/dot/framework/providers"
)

// ── stub providers ────────────────────────────────────────────────────────────

type clock struct {
	now string
}

type stubProvider struct {
	providers.BaseProvider
	registerCalled bool
	bootCalled     bool
	registerErr    error
	bootErr        error
}

func (p *stubProvider) Register(c *container.Container) error {
	p.registerCalled = true
	if p.registerErr != nil {
		return p.registerErr
	}
	return container.Register(c, &clock{now: "register"})
}

func (p *stubProvider) Boot(c *container.Container) error {
	p.bootCalled = true
	return p.bootErr
}

// ── Registry ──────────────────────────────────────────────────────────────────

func TestRegistry_RegisterRunsRegisterPhase(t *testing.T) {
	c := container.New()
	reg := providers.NewRegistry(c)

	p := &stubProvider{}
	if err := reg.Register(p); err != nil {
		t.Fatalf("Register: %v", err)
	}

	if !p.registerCalled {
		t.Error("Register() should run immediately")
	}
	if !container.Has[clock](c) {
		t.Error("provider's registration should land in the container")
	}
}

func TestRegistry_BootRunsAfterAllRegistrations(t *testing.T) {
	c := container.New()
	reg := providers.NewRegistry(c)

	p := &stubProvider{}
	if err := reg.Register(p); err != nil {
		t.Fatalf("Register: %v", err)
	}

	if p.bootCalled {
		t.Error("Boot() should NOT run before registry.Boot()")
	}

	if err := reg.Boot(); err != nil {
		t.Fatalf("Boot: %v", err)
	}
	if !p.bootCalled {
		t.Error("Boot() should run on registry.Boot()")
	}
	if !reg.Booted() {
		t.Error("Booted() should report true")
	}
}

func TestRegistry_DoubleRegisterIsNoop(t *testing.T) {
	c := container.New()
	reg := providers.NewRegistry(c)

	p := &stubProvider{}
	if err := reg.Register(p); err != nil {
		t.Fatalf("first Register: %v", err)
	}
	// A second registration must not re-run the provider (which would fail
	// on the duplicate service key).
	if err := reg.Register(p); err != nil {
		t.Fatalf("second Register: %v", err)
	}
	if got := len(reg.Providers()); got != 1 {
		t.Errorf("got %d providers, want 1", got)
	}
}

func TestRegistry_RegisterAfterBoot_BootsImmediately(t *testing.T) {
	c := container.New()
	reg := providers.NewRegistry(c)

	if err := reg.Boot(); err != nil {
		t.Fatalf("Boot: %v", err)
	}

	p := &stubProvider{}
	if err := reg.Register(p); err != nil {
		t.Fatalf("Register: %v", err)
	}
	if !p.bootCalled {
		t.Error("providers registered after Boot() should boot immediately")
	}
}

func TestRegistry_ErrorsPropagate(t *testing.T) {
	c := container.New()
	reg := providers.NewRegistry(c)

	regErr := errors.New("register failed")
	if err := reg.Register(&stubProvider{registerErr: regErr}); !errors.Is(err, regErr) {
		t.Fatalf("got %v, want the provider's register error", err)
	}

	bootErr := errors.New("boot failed")
	reg2 := providers.NewRegistry(container.New())
	if err := reg2.Register(&stubProvider{bootErr: bootErr}); err != nil {
		t.Fatalf("Register: %v", err)
	}
	if err := reg2.Boot(); !errors.Is(err, bootErr) {
		t.Fatalf("Boot: got %v, want the provider's boot error", err)
	}
}

func TestRegistry_BootIsIdempotent(t *testing.T) {
	c := container.New()
	reg := providers.NewRegistry(c)

	p := &stubProvider{}
	if err := reg.Register(p); err != nil {
		t.Fatalf("Register: %v", err)
	}
	if err := reg.Boot(); err != nil {
		t.Fatalf("first Boot: %v", err)
	}

	p.bootCalled = false
	if err := reg.Boot(); err != nil {
		t.Fatalf("second Boot: %v", err)
	}
	if p.bootCalled {
		t.Error("second Boot() should not re-run providers")
	}
}
