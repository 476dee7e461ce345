package source

import (
	"context"
	"io"
	"net/url"
	"path"
	"strings"

	"github.com/csimplestring/mapok-go/errno"
	"github.com/rotisserie/eris"
	"gocloud.dev/blob"
	"gocloud.dev/gcerrors"
)

// Stdin is the input name that selects the process's standard input.
const Stdin = "-"

// Split turns an object URL into a bucket URL and a key.
//
//	file:///path/to/in.txt   -> file:///path/to?metadata=skip, in.txt
//	s3://bucket/dir/in.txt   -> s3://bucket, dir/in.txt
//	mem://bucket/in.txt      -> mem://bucket, in.txt
func Split(urlstr string) (string, string, error) {
	u, err := url.Parse(urlstr)
	if err != nil {
		return "", "", eris.Wrap(err, urlstr)
	}
	if u.Scheme == "" {
		return "", "", errno.UnsupportedScheme(u.Scheme)
	}

	if u.Scheme == "file" {
		dir, key := path.Split(u.Path)
		if key == "" {
			return "", "", errno.IllegalArgument("no file name in " + urlstr)
		}
		v := u.Query()
		v.Set("metadata", "skip")
		u.Path = strings.TrimSuffix(dir, "/")
		u.RawQuery = v.Encode()
		return u.String(), key, nil
	}

	key := strings.TrimPrefix(u.Path, "/")
	if key == "" {
		return "", "", errno.IllegalArgument("no object key in " + urlstr)
	}
	u.Path = ""
	return u.String(), key, nil
}

// Open returns a reader for urlstr. Stdin reads from stdin, which is not
// closed by the returned reader.
func Open(ctx context.Context, urlstr string, stdin io.Reader) (io.ReadCloser, error) {
	if urlstr == Stdin {
		return io.NopCloser(stdin), nil
	}

	bucketURL, key, err := Split(urlstr)
	if err != nil {
		return nil, err
	}

	b, err := blob.OpenBucket(ctx, bucketURL)
	if err != nil {
		return nil, eris.Wrapf(err, "open bucket %s", bucketURL)
	}

	r, err := b.NewReader(ctx, key, nil)
	if err != nil {
		b.Close()
		if gcerrors.Code(err) == gcerrors.NotFound {
			return nil, errno.FileNotFound(urlstr)
		}
		return nil, eris.Wrapf(err, "open %s", urlstr)
	}

	return &objectReader{Reader: r, bucket: b}, nil
}

type objectReader struct {
	*blob.Reader
	bucket *blob.Bucket
}

func (o *objectReader) Close() error {
	err := o.Reader.Close()
	if cerr := o.bucket.Close(); err == nil {
		err = cerr
	}
	return err
}
