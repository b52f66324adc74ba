package usecase

import (
	"fmt"
	"strings"

	"github.com/fadilmartias/job-tracker/internal/model"
)

const coverLetterTemplate = `あなたは優秀なキャリアアドバイザーです。以下の情報に基づいて、志望動機のドラフトを作成してください。
# 企業の求人内容
%s
# 候補者のスキルや経歴
%s
# 作成する志望動機`

const entrySheetTemplate = `あなたは優秀なキャリアアドバイザーです。以下の情報に基づいて、エントリーシートの設問に対する回答のドラフトを作成してください。
# 企業名
%s
# 職種
%s
# 企業理念
%s
# 求める人物像
%s
# 企業の求人内容
%s
# 候補者のスキル
%s
# 候補者の経歴
%s
# 候補者の自己PR
%s
# 設問
%s
# 回答`

func coverLetterPrompt(jobDescription, skills string) string {
	return fmt.Sprintf(coverLetterTemplate, jobDescription, skills)
}

func entrySheetPrompt(app *model.JobApplication, profile *model.Profile, question string) string {
	return fmt.Sprintf(entrySheetTemplate,
		app.CompanyName,
		app.JobTitle,
		app.CorporatePhilosophy,
		app.IdealCandidate,
		app.JobDescription,
		profile.Skills,
		profile.Experience,
		profile.SelfPR,
		question,
	)
}

// profileSummary is what a cover letter uses when the caller did not type any
// skills into the request.
func profileSummary(profile *model.Profile) string {
	parts := make([]string, 0, 3)
	for _, s := range []string{profile.Skills, profile.Experience, profile.SelfPR} {
		if s = strings.TrimSpace(s); s != "" {
			parts = append(parts, s)
		}
	}
	return strings.Join(parts, "\n\n")
}
