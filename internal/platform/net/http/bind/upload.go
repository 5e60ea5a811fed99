package bind

import (
	"errors"
	"io"
	"mime"
	"net/http"

	perr "leadlens/internal/platform/errors"
)

// multipartMemory is what ParseMultipartForm keeps in memory before spilling to disk
const multipartMemory = 8 << 20

// Upload returns the bytes of an uploaded file
// multipart requests must carry the file under field, any other content type is read as the file itself
func Upload(r *http.Request, field string, maxBytes int64) ([]byte, error) {
	if maxBytes <= 0 {
		maxBytes = DefaultMaxBytes
	}
	if r.Body == nil {
		r.Body = http.NoBody
	}
	r.Body = http.MaxBytesReader(nil, r.Body, maxBytes)

	mt, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mt != "multipart/form-data" {
		defer func() { _ = r.Body.Close() }()
		b, err := io.ReadAll(r.Body)
		if err != nil {
			return nil, uploadErr(err, maxBytes)
		}
		if len(b) == 0 {
			return nil, perr.WithField(perr.New(perr.ErrorCodeValidation, "no file uploaded"), field)
		}
		return b, nil
	}

	if err := r.ParseMultipartForm(multipartMemory); err != nil {
		return nil, uploadErr(err, maxBytes)
	}
	defer func() { _ = r.MultipartForm.RemoveAll() }()

	f, _, err := r.FormFile(field)
	if err != nil {
		return nil, perr.WithField(perr.New(perr.ErrorCodeValidation, "no file uploaded"), field)
	}
	defer func() { _ = f.Close() }()

	b, err := io.ReadAll(f)
	if err != nil {
		return nil, perr.Wrap(err, perr.ErrorCodeValidation, "read upload")
	}
	return b, nil
}

func uploadErr(err error, maxBytes int64) error {
	var mbe *http.MaxBytesError
	if errors.As(err, &mbe) {
		return perr.Newf(perr.ErrorCodeValidation, "request body exceeds %d bytes", maxBytes)
	}
	return perr.Wrap(err, perr.ErrorCodeValidation, "invalid upload")
}
