// Package source reads markup from where the CLI is pointed at it.
//
// A reference is one of:
//
//	"-"                standard input
//	s3://bucket/key    an S3 object (any S3-compatible endpoint)
//	path/to/file.html  a local file
//
// Reads are limited to Opener.MaxBytes; larger inputs fail with H021.
//
//	client := source.NewS3Client(source.S3Options{Region: "eu-west-1"})
//	o := &source.Opener{S3: client, MaxBytes: 10 << 20}
//	markup, err := o.ReadAll(ctx, "s3://site/index.html")
package source
