package contract

import "errors"

// ErrVectorSearchUnsupported is returned by stores that cannot rank vectors
// natively; callers fall back to in-process scoring.
var ErrVectorSearchUnsupported = errors.New("vector search is not supported by this store")
