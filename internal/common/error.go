package common

import "fmt"

var (
	ErrContentNotFoundError         = fmt.Errorf("content not found")
	ErrContentUnavailableError      = fmt.Errorf("content unavailable")
	ErrMalformedManifest            = fmt.Errorf("malformed manifest")
	ErrScanProcessHasAlreadyStarted = fmt.Errorf("scan process has already started")
	ErrManifestNotBuilt             = fmt.Errorf("manifest has not been built yet")
)
