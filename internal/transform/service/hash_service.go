package service

// digestHashService implements HashService on top of a DigestProvider.
type digestHashService struct {
	digests DigestProvider
}

// NewHashService creates a HashService resolving names through digests.
func NewHashService(digests DigestProvider) HashService {
	return &digestHashService{digests: digests}
}

// Hash feeds the UTF-8 bytes of input to the named digest and returns the raw sum.
func (s *digestHashService) Hash(input, algorithm string) ([]byte, error) {
	h, err := s.digests.New(algorithm)
	if err != nil {
		return nil, err
	}

	// hash.Hash.Write never returns an error.
	_, _ = h.Write([]byte(input))
	return h.Sum(nil), nil
}
