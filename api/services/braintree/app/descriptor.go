package app

import (
	"regexp"
	"strings"

	braintree "github.com/braintree-go/braintree-go"
)

const (
	descriptorNameMax = 22
	descriptorURLMax  = 13
)

// Braintree only accepts a 3, 7 or 12 character business part before the '*'.
var descriptorCompanyLengths = []int{3, 7, 12}

var (
	descriptorDisallowed = regexp.MustCompile(`[^A-Za-z0-9 .+\-]`)
	nonDigits            = regexp.MustCompile(`[^0-9]`)
)

// DescriptorName formats a dynamic descriptor name as "company*product".
// The company is padded or cut to the nearest allowed length and the product
// fills the remainder of the 22 characters. It returns "" when either part is empty.
func DescriptorName(company, product string) string {
	company = strings.TrimSpace(descriptorDisallowed.ReplaceAllString(company, ""))
	product = strings.TrimSpace(descriptorDisallowed.ReplaceAllString(product, ""))
	if company == "" || product == "" {
		return ""
	}

	size := descriptorCompanyLengths[len(descriptorCompanyLengths)-1]
	for _, n := range descriptorCompanyLengths {
		if len(company) <= n {
			size = n
			break
		}
	}
	if len(company) > size {
		company = company[:size]
	}
	name := company + strings.Repeat(" ", size-len(company)) + "*" + product
	if len(name) > descriptorNameMax {
		name = name[:descriptorNameMax]
	}
	return name
}

// DescriptorPhone keeps digits only; Braintree rejects phones outside 10-14 digits.
func DescriptorPhone(phone string) string {
	digits := nonDigits.ReplaceAllString(phone, "")
	if len(digits) < 10 || len(digits) > 14 {
		return ""
	}
	return digits
}

// DescriptorURL drops the scheme and cuts the URL to 13 characters.
func DescriptorURL(url string) string {
	url = strings.TrimSpace(url)
	for _, scheme := range []string{"https://", "http://"} {
		url = strings.TrimPrefix(url, scheme)
	}
	if len(url) > descriptorURLMax {
		url = url[:descriptorURLMax]
	}
	return url
}

func (s serviceImpl) descriptor(product string) *braintree.Descriptor {
	d := braintree.Descriptor{
		Name:  DescriptorName(s.opts.DescriptorName, product),
		Phone: DescriptorPhone(s.opts.DescriptorPhone),
		URL:   DescriptorURL(s.opts.DescriptorURL),
	}
	if d.Name == "" && d.Phone == "" && d.URL == "" {
		return nil
	}
	return &d
}
