package usecase

import (
	"context"
	"errors"
	"strings"

	"github.com/fadilmartias/job-tracker/internal/dto"
	"github.com/fadilmartias/job-tracker/internal/repository"
	"github.com/fadilmartias/job-tracker/internal/service"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	DraftErrorPrefix         = "エラー: "
	MsgMissingJobDescription = DraftErrorPrefix + "求人情報が登録されていません。"

	entrySheetMaxTokens = 800
)

var (
	entrySheetTemperature = float32(0.7)

	errCompleterUnavailable = errors.New("AI provider is not configured")
)

// DraftUsecase turns stored application and profile data into a prompt and
// makes exactly one completion call per request. Completion failures are
// returned as text with DraftErrorPrefix, never as errors.
type DraftUsecase struct {
	appRepo     *repository.JobApplicationRepository
	esRepo      *repository.EntrySheetRepository
	profileRepo *repository.ProfileRepository
	completer   service.Completer
	logger      *zap.Logger
}

func NewDraftUsecase(
	appRepo *repository.JobApplicationRepository,
	esRepo *repository.EntrySheetRepository,
	profileRepo *repository.ProfileRepository,
	completer service.Completer,
	logger *zap.Logger,
) *DraftUsecase {
	return &DraftUsecase{
		appRepo:     appRepo,
		esRepo:      esRepo,
		profileRepo: profileRepo,
		completer:   completer,
		logger:      logger,
	}
}

// GenerateCoverLetter drafts a motivation letter for the application. The
// result is not stored.
func (uc *DraftUsecase) GenerateCoverLetter(ctx context.Context, ownerID, appID uuid.UUID, req dto.DraftRequest) (*dto.DraftResponse, error) {
	app, err := uc.appRepo.FindByOwner(ctx, ownerID, appID)
	if err != nil {
		return nil, err
	}

	skills := strings.TrimSpace(req.UserSkills)
	if strings.TrimSpace(app.JobDescription) == "" {
		return &dto.DraftResponse{Text: MsgMissingJobDescription, SubmittedSkills: skills}, nil
	}
	if skills == "" {
		profile, err := uc.profileRepo.FindByUserID(ctx, ownerID)
		if err != nil {
			return nil, err
		}
		skills = profileSummary(profile)
	}

	text, err := uc.complete(ctx, service.CompletionRequest{
		Messages: []service.Message{
			{Role: service.RoleUser, Content: coverLetterPrompt(app.JobDescription, skills)},
		},
	})
	if err != nil {
		uc.logger.Warn("cover letter generation failed",
			zap.String("application_id", app.ID.String()), zap.Error(err))
		return &dto.DraftResponse{Text: DraftErrorPrefix + err.Error(), SubmittedSkills: skills}, nil
	}
	return &dto.DraftResponse{Text: text, Generated: true, SubmittedSkills: skills}, nil
}

// GenerateEntrySheetDraft drafts an answer to the entry sheet's question and
// stores it in AIDraft when the call succeeds.
func (uc *DraftUsecase) GenerateEntrySheetDraft(ctx context.Context, ownerID, esID uuid.UUID) (*dto.DraftResponse, error) {
	es, err := uc.esRepo.FindByOwner(ctx, ownerID, esID)
	if err != nil {
		return nil, err
	}
	app := es.JobApplication
	if app == nil || strings.TrimSpace(app.JobDescription) == "" {
		return &dto.DraftResponse{Text: MsgMissingJobDescription}, nil
	}

	profile, err := uc.profileRepo.FindByUserID(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	text, err := uc.complete(ctx, service.CompletionRequest{
		Messages: []service.Message{
			{Role: service.RoleUser, Content: entrySheetPrompt(app, profile, es.Question)},
		},
		MaxTokens:   entrySheetMaxTokens,
		Temperature: &entrySheetTemperature,
	})
	if err != nil {
		uc.logger.Warn("entry sheet draft generation failed",
			zap.String("entry_sheet_id", es.ID.String()), zap.Error(err))
		return &dto.DraftResponse{Text: DraftErrorPrefix + err.Error()}, nil
	}

	es.AIDraft = text
	if err := uc.esRepo.SaveDraft(ctx, ownerID, es); err != nil {
		return nil, err
	}
	return &dto.DraftResponse{Text: text, Generated: true, Persisted: true}, nil
}

func (uc *DraftUsecase) complete(ctx context.Context, req service.CompletionRequest) (string, error) {
	if uc.completer == nil {
		return "", errCompleterUnavailable
	}
	text, err := uc.completer.Complete(ctx, req)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(text), nil
}
