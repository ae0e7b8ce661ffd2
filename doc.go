// Package vectorizer is a client for the Vectorizer.AI API, which converts
// raster images (PNG, JPEG, BMP, GIF, TIFF) into vector graphics (SVG, EPS,
// PDF, DXF) or re-rendered PNG.
//
// # Quick Start
//
//	client, err := vectorizer.New(vectorizer.WithCredentials(apiID, apiSecret))
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	img, err := vectorizer.ImageFromFile("logo.png")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	res, err := client.Vectorize(ctx, &vectorizer.VectorizeRequest{
//	    Image: img,
//	    Mode:  vectorizer.ModeTest,
//	    Output: vectorizer.OutputOptions{
//	        FileFormat: vectorizer.FormatSVG,
//	    },
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	_ = res.WriteFile("logo" + res.Extension())
//
// # Endpoints
//
//   - Vectorize: upload an image (bytes, base64, URL or retained token) and
//     receive the converted file.
//   - Download: render a retained image again, e.g. in another format.
//   - Delete: drop a retained image early.
//   - Account: subscription state and remaining credits.
//
// # Optional Parameters
//
// Optional numeric and boolean parameters are pointers. A nil pointer (or an
// empty enum string) is omitted from the request and the service default
// applies. Use Bool, Int and Float to fill them in.
//
// # Error Handling
//
// Parameters are validated before any network call; failures are returned
// as *ValidationError and match ErrInvalidParameter. Non-2xx responses are
// returned as *APIError without retry. Well-known statuses match sentinels:
//
//   - ErrUnauthorized: bad credentials (401)
//   - ErrInsufficientCredits: out of credits (402)
//   - ErrRateLimited: too many requests (429)
//   - ErrServer: any 5xx
//
//	if errors.Is(err, vectorizer.ErrRateLimited) {
//	    // back off
//	}
package vectorizer
