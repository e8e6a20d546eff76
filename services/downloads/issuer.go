package downloads

import (
	"context"
	"fmt"
	"time"

	"github.com/MarcGrol/fairywrenstore/lib/myerrors"
	"github.com/MarcGrol/fairywrenstore/lib/myobjectstore"
	"github.com/MarcGrol/fairywrenstore/services/checkoutapi"
)

const msgInvalidProductType = "Invalid product type"

// File is a bucket object handed out under a stable label.
type File struct {
	Label string
	Key   string
}

var grants = map[checkoutapi.ProductType][]File{
	checkoutapi.ProductTypeEbook: {
		{Label: "pdf", Key: "A Superb Fairywren.pdf"},
		{Label: "epub", Key: "A Superb Fairywren.epub"},
	},
	checkoutapi.ProductTypeAudiobook: {
		{Label: "m4b", Key: "A Superb Fairywren.m4b"},
		{Label: "mp3zip", Key: "A Superb Fairywren.zip"},
	},
}

// FilesFor returns the files a buyer of the product may download. Physical
// products have none.
func FilesFor(productType checkoutapi.ProductType) ([]File, bool) {
	files, found := grants[productType]
	return files, found
}

type Issuer struct {
	presigner myobjectstore.Presigner
}

func NewIssuer(presigner myobjectstore.Presigner) *Issuer {
	return &Issuer{
		presigner: presigner,
	}
}

// IssueLinks mints a signed url per file of the product, keyed by label.
// All links share the same expiry.
func (i *Issuer) IssueLinks(c context.Context, productType checkoutapi.ProductType, expiry time.Duration) (map[string]string, error) {
	files, found := FilesFor(productType)
	if !found {
		return nil, myerrors.NewInvalidInputErrorf(msgInvalidProductType)
	}

	links := make(map[string]string, len(files))
	for _, f := range files {
		url, err := i.presigner.PresignGet(c, f.Key, expiry)
		if err != nil {
			return nil, myerrors.NewInternalError(fmt.Errorf("error signing %s link: %s", f.Label, err))
		}
		links[f.Label] = url
	}

	return links, nil
}
