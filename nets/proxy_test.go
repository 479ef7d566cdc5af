package nets

import (
	"testing"

	"github.com/reusee/bfc/configs"
	"github.com/reusee/bfc/logs"
	"github.com/reusee/bfc/modes"
	"github.com/reusee/dscope"
)

func TestNoProxyInDevelopment(t *testing.T) {
	t.Setenv("ALL_PROXY", "socks5://127.0.0.1:1")
	dscope.New(
		modes.ForTest(t),
		new(Module),
		new(logs.Module),
		dscope.Provide(configs.NewLoader(nil, "")),
	).Call(func(
		addr ProxyAddr,
		getURL GetProxyURL,
		client HTTPClient,
	) {
		if addr != "" {
			t.Fatalf("got %q", addr)
		}
		u, err := getURL()
		if err != nil {
			t.Fatal(err)
		}
		if u != nil {
			t.Fatalf("got %v", u)
		}
		if client == nil {
			t.Fatal("should have client")
		}
	})
}

func TestSocksScheme(t *testing.T) {
	var m Module
	u, err := m.GetProxyURL(ProxyAddr("socks://127.0.0.1:1080"))()
	if err != nil {
		t.Fatal(err)
	}
	if u.Scheme != "socks5" {
		t.Fatalf("got %s", u.Scheme)
	}

	dialer, err := m.GetProxyDialer(m.GetProxyURL(ProxyAddr("socks://127.0.0.1:1080")))()
	if err != nil {
		t.Fatal(err)
	}
	if dialer == nil {
		t.Fatal("should have dialer")
	}
}

func TestBadProxyScheme(t *testing.T) {
	var m Module
	_, err := m.GetProxyDialer(m.GetProxyURL(ProxyAddr("gopher://127.0.0.1:70")))()
	if err == nil {
		t.Fatal("should error")
	}
}
