package handler

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/jaldristi/jaldristi_web/internal/models"
)

// formOverhead - запас на текстовые поля формы сверх лимита фото
const formOverhead = 1 << 20

var (
	ErrImageTooLarge = errors.New("image is too large")
	ErrNotAnImage    = errors.New("uploaded file is not an image")
)

// ParseUploadForm ограничивает тело запроса и разбирает форму целиком до чтения полей.
// Превышение лимита дает ErrImageTooLarge; обычная urlencoded-форма не ошибка.
func ParseUploadForm(w http.ResponseWriter, r *http.Request, maxImageBytes int64) error {
	body := http.MaxBytesReader(w, r.Body, maxImageBytes+formOverhead)
	r.Body = body

	err := r.ParseMultipartForm(maxImageBytes)
	switch {
	case err == nil, errors.Is(err, http.ErrNotMultipart):
		return nil
	case bodyTooLarge(err, body):
		return ErrImageTooLarge
	default:
		return fmt.Errorf("parse form: %w", err)
	}
}

// bodyTooLarge узнает сработавший лимит, даже если парсер потерял обертку ошибки:
// MaxBytesReader после срабатывания возвращает ту же ошибку на каждое чтение
func bodyTooLarge(err error, body io.Reader) bool {
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		return true
	}
	_, err = body.Read(make([]byte, 1))
	return errors.As(err, &tooLarge)
}

// ReadImage читает загруженный файл в черновое фото, не больше maxBytes.
// Тип определяется по содержимому; заявленный клиентом Content-Type не используется.
func ReadImage(fh *multipart.FileHeader, maxBytes int64) (*models.DraftImage, error) {
	if fh.Size > maxBytes {
		return nil, ErrImageTooLarge
	}

	f, err := fh.Open()
	if err != nil {
		return nil, fmt.Errorf("open upload: %w", err)
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, maxBytes+1))
	if err != nil {
		return nil, fmt.Errorf("read upload: %w", err)
	}
	if int64(len(data)) > maxBytes {
		return nil, ErrImageTooLarge
	}

	// DetectContentType не возвращает image/svg+xml, поэтому SVG со скриптами сюда не пройдет
	contentType := http.DetectContentType(data)
	if !strings.HasPrefix(contentType, "image/") {
		return nil, ErrNotAnImage
	}

	return &models.DraftImage{
		Filename:    fh.Filename,
		ContentType: contentType,
		Data:        data,
	}, nil
}
