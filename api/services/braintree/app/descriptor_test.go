package app

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDescriptorName_CompanyLengths(t *testing.T) {
	cases := []struct {
		company, product, want string
	}{
		{"ABC", "Widget", "ABC*Widget"},
		{"AB", "Widget", "AB *Widget"},
		{"Acme", "Monthly plan", "Acme   *Monthly plan"},
		{"Acme Corp", "Monthly plan", "Acme Corp   *Monthly p"},
		{"Acme Corporation Ltd", "Monthly plan", "Acme Corpora*Monthly p"},
	}
	for _, c := range cases {
		got := DescriptorName(c.company, c.product)
		assert.Equal(t, c.want, got, "company=%q product=%q", c.company, c.product)
		assert.LessOrEqual(t, len(got), 22)
		idx := strings.Index(got, "*")
		assert.Contains(t, []int{3, 7, 12}, idx)
	}
}

func TestDescriptorName_StripsDisallowedCharacters(t *testing.T) {
	assert.Equal(t, "Acme   *Pro plan 2x", DescriptorName("Ac/me!", "Pro plan (2x)"))
}

func TestDescriptorName_EmptyParts(t *testing.T) {
	assert.Equal(t, "", DescriptorName("", "Widget"))
	assert.Equal(t, "", DescriptorName("Acme", ""))
	assert.Equal(t, "", DescriptorName("***", "Widget"))
}

func TestDescriptorPhone(t *testing.T) {
	assert.Equal(t, "5555555555", DescriptorPhone("(555) 555-5555"))
	assert.Equal(t, "", DescriptorPhone("555-5555"))
	assert.Equal(t, "", DescriptorPhone("123456789012345"))
}

func TestDescriptorURL(t *testing.T) {
	assert.Equal(t, "example.com", DescriptorURL("https://example.com"))
	assert.Equal(t, "averyverylong", DescriptorURL("averyverylongdomain.com"))
}

func TestServiceDescriptor(t *testing.T) {
	s := serviceImpl{opts: Options{DescriptorName: "Acme", DescriptorPhone: "555 555 5555", DescriptorURL: "acme.io"}}
	d := s.descriptor("Widget")
	if assert.NotNil(t, d) {
		assert.Equal(t, "Acme   *Widget", d.Name)
		assert.Equal(t, "5555555555", d.Phone)
		assert.Equal(t, "acme.io", d.URL)
	}

	assert.Nil(t, serviceImpl{}.descriptor("Widget"))
}
