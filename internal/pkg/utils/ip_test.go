package utils

import "testing"

func TestNormalizeIP(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "plain_ipv4", input: "192.168.1.10", want: "192.168.1.10"},
		{name: "host_port", input: "192.168.1.10:8080", want: "192.168.1.10"},
		{name: "forwarded_for_list", input: "10.0.0.5, 172.16.0.1", want: "10.0.0.5"},
		{name: "ipv4_mapped_ipv6", input: "::ffff:192.0.2.1", want: "192.0.2.1"},
		{name: "ipv6_with_port", input: "[2001:db8::1]:443", want: "2001:db8::1"},
		{name: "empty", input: "", want: ""},
		{name: "not_an_ip", input: "example.com", want: "example.com"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizeIP(tt.input); got != tt.want {
				t.Errorf("NormalizeIP(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
