package handler

import (
	"fmt"
	"io"
	"mime/multipart"

	domainerrors "artisanconnect/internal/domain/errors"
	"artisanconnect/internal/usecase"
	"artisanconnect/internal/util"

	"github.com/pkg/errors"
)

// readUpload loads a multipart file into memory, refusing files above maxSize bytes.
func readUpload(fh *multipart.FileHeader, maxSize int64) (usecase.UploadedFile, error) {
	if maxSize > 0 && fh.Size > maxSize {
		return usecase.UploadedFile{}, domainerrors.ErrFileTooLarge.WrapMessage(
			fmt.Sprintf("file %q is %s, limit is %s", fh.Filename, util.FormatBytes(fh.Size), util.FormatBytes(maxSize)))
	}

	f, err := fh.Open()
	if err != nil {
		return usecase.UploadedFile{}, errors.Wrapf(err, "open upload %q", fh.Filename)
	}
	defer f.Close()

	reader := io.Reader(f)
	if maxSize > 0 {
		reader = io.LimitReader(f, maxSize+1)
	}

	data, err := io.ReadAll(reader)
	if err != nil {
		return usecase.UploadedFile{}, errors.Wrapf(err, "read upload %q", fh.Filename)
	}

	if maxSize > 0 && int64(len(data)) > maxSize {
		return usecase.UploadedFile{}, domainerrors.ErrFileTooLarge.WrapMessage(
			fmt.Sprintf("file %q exceeds %s", fh.Filename, util.FormatBytes(maxSize)))
	}

	return usecase.UploadedFile{FileName: fh.Filename, Data: data}, nil
}
