// Package template provides profile card rendering.
//
// 지원하는 변수 형식:
//
//	{{profile.name}}, {{profile.bio}}, {{profile.image}}, {{profile.initial}}
//
// 이미지가 없는 프로필은 {{profile.image}} 자리에 이름 첫 글자를 쓴다.
package template

import (
	"html"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/sistema-bancario/backend/internal/model"
)

// DefaultCard - 카드 레이아웃 기본값
const DefaultCard = `<div class="profile-card">{{profile.image}}<h3>{{profile.name}}</h3><p>{{profile.bio}}</p></div>`

// ProfileData - 템플릿 렌더링에 사용할 Profile 데이터 (HTML escape 완료)
type ProfileData struct {
	Name    string
	Bio     string
	Image   string
	Initial string
}

// ProfileDataFromModel - model.Profile에서 ProfileData 생성
func ProfileDataFromModel(p model.Profile) ProfileData {
	return ProfileData{
		Name:    html.EscapeString(p.Name),
		Bio:     html.EscapeString(p.Bio),
		Image:   html.EscapeString(strings.TrimSpace(p.Image)),
		Initial: html.EscapeString(Initial(p.Name)),
	}
}

// Initial은 이름의 첫 글자를 대문자로 돌려준다. 빈 이름은 "?".
func Initial(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return "?"
	}
	r, _ := utf8.DecodeRuneInString(name)
	return string(unicode.ToUpper(r))
}

// RenderCard - 카드 템플릿의 변수를 실제 값으로 치환
//
// profile이 nil이면 모든 변수가 빈 문자열로 치환됩니다.
func RenderCard(body string, profile *ProfileData) string {
	if profile == nil {
		return strings.NewReplacer(
			"{{profile.name}}", "",
			"{{profile.bio}}", "",
			"{{profile.image}}", "",
			"{{profile.initial}}", "",
		).Replace(body)
	}

	image := `<span class="profile-initial">` + profile.Initial + `</span>`
	if profile.Image != "" {
		image = `<img src="` + profile.Image + `" alt="` + profile.Name + `">`
	}

	return strings.NewReplacer(
		"{{profile.name}}", profile.Name,
		"{{profile.bio}}", profile.Bio,
		"{{profile.image}}", image,
		"{{profile.initial}}", profile.Initial,
	).Replace(body)
}

// RenderCards는 프로필 목록을 같은 레이아웃으로 렌더링한다.
func RenderCards(body string, profiles []model.Profile) []model.ProfileCard {
	cards := make([]model.ProfileCard, 0, len(profiles))
	for _, p := range profiles {
		data := ProfileDataFromModel(p)
		cards = append(cards, model.ProfileCard{Name: p.Name, Card: RenderCard(body, &data)})
	}
	return cards
}
