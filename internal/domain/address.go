package domain

// WalletAddress is a base58 account identifier as reported by the wallet or
// entered by the user. It is not validated by this package.
type WalletAddress string

// DefaultShortenChars is the number of characters kept on each side by
// ShortenAddress when callers pass a non-positive count.
const DefaultShortenChars = 4

func (a WalletAddress) String() string {
	return string(a)
}

func (a WalletAddress) IsZero() bool {
	return a == ""
}

// Short renders the address with DefaultShortenChars on each side.
func (a WalletAddress) Short() string {
	return ShortenAddress(string(a), DefaultShortenChars)
}

// ShortenAddress keeps the first and last chars runes of address and joins
// them with "...". An address of at most 2*chars runes is returned unchanged.
func ShortenAddress(address string, chars int) string {
	if chars <= 0 {
		chars = DefaultShortenChars
	}

	runes := []rune(address)
	if len(runes) <= chars*2 {
		return address
	}

	return string(runes[:chars]) + "..." + string(runes[len(runes)-chars:])
}
