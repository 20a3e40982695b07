package convert

import (
	stderrors "errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"codeberg.org/savant/server/internal/auth"
	"codeberg.org/savant/server/internal/dispatch"
	"codeberg.org/savant/server/internal/errors"
	"codeberg.org/savant/server/internal/format"
	"codeberg.org/savant/server/internal/quota"
	"codeberg.org/savant/server/savant/conversions"
)

// ConvertHandler runs one file conversion: quota check, dispatch,
// binary response, then a best-effort audit write
func ConvertHandler(guard QuotaChecker, converter Converter, recorder AuditRecorder) gin.HandlerFunc {
	return func(c *gin.Context) {
		fromTag := strings.ToLower(strings.TrimSpace(c.PostForm("from")))
		toTag := strings.ToLower(strings.TrimSpace(c.PostForm("to")))

		if fromTag == "" || toTag == "" {
			errors.BadRequest(c, "from and to formats are required", nil)
			return
		}

		from, ok := format.Parse(fromTag)
		if !ok {
			errors.BadRequest(c, fmt.Sprintf("unknown source format: %s", fromTag), nil)
			return
		}

		to, ok := format.Parse(toTag)
		if !ok {
			errors.BadRequest(c, fmt.Sprintf("unknown target format: %s", toTag), nil)
			return
		}

		files, err := readUploads(c)
		if err != nil {
			errors.BadRequest(c, "failed to read uploaded files", err)
			return
		}

		if len(files) == 0 {
			errors.BadRequest(c, "at least one file is required", nil)
			return
		}

		identity := auth.ResolveIdentity(c)

		if err := guard.Check(c.Request.Context(), identity); err != nil {
			if stderrors.Is(err, quota.ErrQuotaExceeded) {
				errors.QuotaExceeded(c, err.Error())
				return
			}

			errors.InternalError(c, "failed to check conversion quota", err)
			return
		}

		rec := conversions.Record{
			ConversionType: fromTag + "-to-" + toTag,
			FromFormat:     fromTag,
			ToFormat:       toTag,
			FileName:       files[0].Name,
			FileSize:       totalSize(files),
			UserID:         identity.UserID,
			IPAddress:      identity.IPAddress,
			UserAgent:      identity.UserAgent,
		}

		start := time.Now()

		result, err := converter.Convert(dispatch.Request{From: from, To: to, Files: files})

		rec.DurationMillis = time.Since(start).Milliseconds()

		if err != nil {
			rec.Status = conversions.StatusFailed
			rec.ErrorMessage = err.Error()
			recorder.Record(c.Request.Context(), rec)

			if dispatch.IsValidationError(err) {
				errors.BadRequest(c, err.Error(), nil)
				return
			}

			errors.InternalError(c, err.Error(), err)
			return
		}

		rec.Status = conversions.StatusSuccess
		recorder.Record(c.Request.Context(), rec)

		c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", result.FileName))
		c.Data(http.StatusOK, result.MIMEType, result.Output)
	}
}

// collects uploaded payloads from the multipart form; accepts a single
// "file" field, a repeated "files" field, or both
func readUploads(c *gin.Context) ([]dispatch.File, error) {
	form, err := c.MultipartForm()
	if err != nil {
		return nil, err
	}

	headers := append([]*multipart.FileHeader{}, form.File["file"]...)
	headers = append(headers, form.File["files"]...)

	files := make([]dispatch.File, 0, len(headers))

	for _, header := range headers {
		f, err := header.Open()
		if err != nil {
			return nil, err
		}

		data, err := io.ReadAll(f)
		f.Close() //nolint:errcheck // read-only handle

		if err != nil {
			return nil, err
		}

		files = append(files, dispatch.File{Name: header.Filename, Data: data})
	}

	return files, nil
}

func totalSize(files []dispatch.File) int64 {
	var total int64

	for _, f := range files {
		total += int64(len(f.Data))
	}

	return total
}
