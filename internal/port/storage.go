package port

import "context"

// DocumentArchive stores the raw documents received from market participants.
type DocumentArchive interface {
	Archive(ctx context.Context, key string, body []byte) error
}
