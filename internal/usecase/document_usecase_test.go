package usecase_test

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http/httptest"
	"net/textproto"
	"strings"
	"testing"

	"github.com/fadilmartias/job-tracker/internal/dto"
	"github.com/fadilmartias/job-tracker/internal/model"
	"github.com/fadilmartias/job-tracker/internal/repository"
	"github.com/fadilmartias/job-tracker/internal/testutil"
	"github.com/fadilmartias/job-tracker/internal/usecase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func fileHeader(t *testing.T, filename, contentType string, data []byte) *multipart.FileHeader {
	t.Helper()
	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)
	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="uploaded_file"; filename="%s"`, filename))
	h.Set("Content-Type", contentType)
	part, err := w.CreatePart(h)
	require.NoError(t, err)
	_, err = part.Write(data)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	req := httptest.NewRequest("POST", "/", body)
	req.Header.Set("Content-Type", w.FormDataContentType())
	require.NoError(t, req.ParseMultipartForm(32<<20))
	return req.MultipartForm.File["uploaded_file"][0]
}

func newDocumentUsecase(db *gorm.DB, storage *memoryStorage) *usecase.DocumentUsecase {
	return usecase.NewDocumentUsecase(
		repository.NewJobApplicationRepository(db),
		repository.NewDocumentRepository(db),
		storage,
		zap.NewNop(),
	)
}

func TestDocumentUsecase_UploadOpenDelete(t *testing.T) {
	db := testutil.NewDB(t)
	storage := newMemoryStorage()
	uc := newDocumentUsecase(db, storage)
	ctx := context.Background()
	alice := testutil.CreateUser(t, db, "alice")
	app := testutil.CreateApplication(t, db, alice, "Acme")

	file := fileHeader(t, "portfolio.txt", "text/plain", []byte("hello"))
	doc, err := uc.Upload(ctx, alice.ID, app.ID, dto.DocumentRequest{Name: "ポートフォリオ"}, file)
	require.NoError(t, err)
	assert.Equal(t, app.ID, doc.JobApplicationID)
	assert.Regexp(t, `^documents/\d{4}/\d{2}/[0-9a-f-]{36}-portfolio\.txt$`, doc.FileRef)
	assert.Equal(t, int64(5), doc.Size)
	assert.Contains(t, storage.files, doc.FileRef)

	got, rc, err := uc.Open(ctx, alice.ID, doc.ID)
	require.NoError(t, err)
	data, _ := io.ReadAll(rc)
	rc.Close()
	assert.Equal(t, "hello", string(data))
	assert.Equal(t, "ポートフォリオ", got.Name)

	_, err = uc.Delete(ctx, alice.ID, doc.ID)
	require.NoError(t, err)
	assert.NotContains(t, storage.files, doc.FileRef)
}

func TestDocumentUsecase_UnreadablePDFStillUploads(t *testing.T) {
	db := testutil.NewDB(t)
	uc := newDocumentUsecase(db, newMemoryStorage())
	alice := testutil.CreateUser(t, db, "alice")
	app := testutil.CreateApplication(t, db, alice, "Acme")

	file := fileHeader(t, "cv.pdf", "application/pdf", []byte("not really a pdf"))
	doc, err := uc.Upload(context.Background(), alice.ID, app.ID, dto.DocumentRequest{Name: "CV"}, file)
	require.NoError(t, err)
	assert.Zero(t, doc.PageCount)
	assert.Empty(t, doc.ExtractedText)
}

func TestDocumentUsecase_List(t *testing.T) {
	db := testutil.NewDB(t)
	uc := newDocumentUsecase(db, newMemoryStorage())
	ctx := context.Background()
	alice := testutil.CreateUser(t, db, "alice")
	bob := testutil.CreateUser(t, db, "bob")
	app := testutil.CreateApplication(t, db, alice, "Acme")

	for _, name := range []string{"cv.txt", "letter.txt"} {
		_, err := uc.Upload(ctx, alice.ID, app.ID, dto.DocumentRequest{Name: name}, fileHeader(t, name, "text/plain", []byte(name)))
		require.NoError(t, err)
	}

	docs, err := uc.List(ctx, alice.ID, app.ID)
	require.NoError(t, err)
	assert.Len(t, docs, 2)

	_, err = uc.List(ctx, bob.ID, app.ID)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestDocumentUsecase_OwnershipAndValidation(t *testing.T) {
	db := testutil.NewDB(t)
	storage := newMemoryStorage()
	uc := newDocumentUsecase(db, storage)
	ctx := context.Background()
	alice := testutil.CreateUser(t, db, "alice")
	bob := testutil.CreateUser(t, db, "bob")
	app := testutil.CreateApplication(t, db, alice, "Acme")

	file := fileHeader(t, "cv.txt", "text/plain", []byte("x"))
	_, err := uc.Upload(ctx, bob.ID, app.ID, dto.DocumentRequest{Name: "CV"}, file)
	assert.ErrorIs(t, err, repository.ErrNotFound)

	_, err = uc.Upload(ctx, alice.ID, app.ID, dto.DocumentRequest{}, nil)
	require.Error(t, err)
	assert.Empty(t, storage.files)

	doc, err := uc.Upload(ctx, alice.ID, app.ID, dto.DocumentRequest{Name: "CV"}, file)
	require.NoError(t, err)
	_, _, err = uc.Open(ctx, bob.ID, doc.ID)
	assert.ErrorIs(t, err, repository.ErrNotFound)
	_, err = uc.Delete(ctx, bob.ID, doc.ID)
	assert.ErrorIs(t, err, repository.ErrNotFound)

	var count int64
	db.Model(&model.Document{}).Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestInterviewLogUsecase(t *testing.T) {
	db := testutil.NewDB(t)
	appRepo := repository.NewJobApplicationRepository(db)
	uc := usecase.NewInterviewLogUsecase(appRepo, repository.NewInterviewLogRepository(db))
	ctx := context.Background()
	alice := testutil.CreateUser(t, db, "alice")
	bob := testutil.CreateUser(t, db, "bob")
	app := testutil.CreateApplication(t, db, alice, "Acme")

	_, err := uc.Create(ctx, bob.ID, app.ID, dto.InterviewLogRequest{Stage: "一次", InterviewDate: "2025-01-10"})
	assert.ErrorIs(t, err, repository.ErrNotFound)

	log, err := uc.Create(ctx, alice.ID, app.ID, dto.InterviewLogRequest{
		Stage:          "一次面接",
		InterviewDate:  "2025-01-10",
		QuestionsAsked: "自己紹介",
	})
	require.NoError(t, err)

	updated, err := uc.Update(ctx, alice.ID, log.ID, dto.InterviewLogRequest{Stage: "二次面接", InterviewDate: "2025-02-01"})
	require.NoError(t, err)
	assert.Equal(t, "二次面接", updated.Stage)
	assert.Empty(t, updated.QuestionsAsked)

	_, err = uc.Update(ctx, bob.ID, log.ID, dto.InterviewLogRequest{Stage: "x", InterviewDate: "2025-02-01"})
	assert.ErrorIs(t, err, repository.ErrNotFound)

	logs, err := uc.List(ctx, alice.ID, app.ID)
	require.NoError(t, err)
	assert.Len(t, logs, 1)
	_, err = uc.List(ctx, bob.ID, app.ID)
	assert.ErrorIs(t, err, repository.ErrNotFound)

	deleted, err := uc.Delete(ctx, alice.ID, log.ID)
	require.NoError(t, err)
	assert.Equal(t, app.ID, deleted.JobApplicationID)
}

func TestEntrySheetUsecase(t *testing.T) {
	db := testutil.NewDB(t)
	uc := usecase.NewEntrySheetUsecase(repository.NewJobApplicationRepository(db), repository.NewEntrySheetRepository(db))
	ctx := context.Background()
	alice := testutil.CreateUser(t, db, "alice")
	bob := testutil.CreateUser(t, db, "bob")
	app := testutil.CreateApplication(t, db, alice, "Acme")

	es, err := uc.Create(ctx, alice.ID, app.ID, dto.EntrySheetRequest{Question: "ガクチカ"})
	require.NoError(t, err)

	_, err = uc.Create(ctx, bob.ID, app.ID, dto.EntrySheetRequest{Question: "x"})
	assert.ErrorIs(t, err, repository.ErrNotFound)

	updated, err := uc.Update(ctx, alice.ID, es.ID, dto.EntrySheetRequest{Question: "ガクチカ", Answer: strings.Repeat("a", 10)})
	require.NoError(t, err)
	assert.Equal(t, strings.Repeat("a", 10), updated.Answer)

	_, err = uc.Get(ctx, bob.ID, es.ID)
	assert.ErrorIs(t, err, repository.ErrNotFound)
	_, err = uc.Delete(ctx, bob.ID, es.ID)
	assert.ErrorIs(t, err, repository.ErrNotFound)

	_, err = uc.Delete(ctx, alice.ID, es.ID)
	require.NoError(t, err)
	_, err = uc.Get(ctx, alice.ID, es.ID)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}
