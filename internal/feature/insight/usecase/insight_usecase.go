// Package usecase は値動き解説テキスト生成のビジネスロジックを実装します。
package usecase

import (
	"context"
	"fmt"
	"strings"

	"alphadesk/internal/shared/ratelimiter"
)

const (
	// NoNewsMessage はヘッドラインが1件も無い場合に返す固定メッセージです。
	// この分岐はバックエンドを呼ばない無料のショートカットです。
	NoNewsMessage = "⚠️ 글로벌 증시 관련 뉴스가 없습니다. 기술적 분석을 참고하세요."

	// PromptTemplate は値動き解説のプロンプトテンプレートです。
	// 出力形式（3個の箇条書き）・言語（韓国語）・トーンをモデルへの指示で固定します。
	PromptTemplate = `Role: Wall Street Expert. Target: %s ETF. Today's Move: %s.
News Found:
%s
Task: Explain WHY the ETF moved today in KOREAN based on the news above.
Output: 3 bullet points, Professional and Positive tone.`

	// ErrorFormat はバックエンド失敗時に表示する診断文字列のフォーマットです。
	// シングルユーザーツールのため、失敗の詳細はログではなく画面にそのまま出します。
	ErrorFormat = "🚨 AI 에러 발생:<br><br>%s"
)

// TextGenerator は生成テキストバックエンドを抽象化します。
// Goの慣例に従い、インターフェースは利用者（usecase）側で定義します。
type TextGenerator interface {
	// Generate はプロンプトからテキストを生成して返します。
	Generate(ctx context.Context, prompt string) (string, error)
}

// insightUsecase は値動き解説生成のユースケースを定義します。
type insightUsecase struct {
	generator TextGenerator
	limiter   ratelimiter.RateLimiterInterface
}

// NewInsightUsecase はinsightUsecaseの新しいインスタンスを生成します。
// limiterがnilの場合はレート制限なしで動作します。
func NewInsightUsecase(generator TextGenerator, limiter ratelimiter.RateLimiterInterface) *insightUsecase {
	return &insightUsecase{generator: generator, limiter: limiter}
}

// BuildPrompt はティッカー・変化率ラベル・ヘッドライン一覧からプロンプトを構築します。
func BuildPrompt(ticker, changeLabel string, headlines []string) string {
	bullets := make([]string, 0, len(headlines))
	for _, h := range headlines {
		bullets = append(bullets, "- "+h)
	}
	return fmt.Sprintf(PromptTemplate, ticker, changeLabel, strings.Join(bullets, "\n"))
}

// Generate は銘柄の当日の値動きを説明するテキストを返します。常に表示可能な
// テキストを返し、エラーが呼び出し元に伝播することはありません。
//   - ヘッドラインが空の場合はNoNewsMessageを返し、バックエンドは一切呼びません。
//   - バックエンドの失敗（認証・クォータ・タイムアウト等）はErrorFormatの
//     診断文字列に変換されます。
func (u *insightUsecase) Generate(ctx context.Context, ticker, changeLabel string, headlines []string) string {
	if len(headlines) == 0 {
		return NoNewsMessage
	}

	// 無料枠のクォータ保護
	if u.limiter != nil {
		u.limiter.WaitIfNeeded()
	}

	text, err := u.generator.Generate(ctx, BuildPrompt(ticker, changeLabel, headlines))
	if err != nil {
		return fmt.Sprintf(ErrorFormat, err)
	}
	return strings.TrimSpace(text)
}
