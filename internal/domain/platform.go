package domain

type Media string

const (
	MediaNaver  Media = "네이버"
	MediaGoogle Media = "구글"
	MediaKakao  Media = "카카오"
	MediaMeta   Media = "메타"
	MediaTikTok Media = "틱톡"
)

// Platform is the display metadata of one media channel.
type Platform struct {
	Media Media  `json:"media"`
	Key   string `json:"key"`
	Label string `json:"label"`
	Color string `json:"color"`
}

// Platforms is the static platform registry, in display order.
var Platforms = []Platform{
	{Media: MediaNaver, Key: "naver", Label: "네이버", Color: "#03C75A"},
	{Media: MediaGoogle, Key: "google", Label: "구글", Color: "#4285F4"},
	{Media: MediaKakao, Key: "kakao", Label: "카카오", Color: "#FEE500"},
	{Media: MediaMeta, Key: "meta", Label: "메타", Color: "#0866FF"},
	{Media: MediaTikTok, Key: "tiktok", Label: "틱톡", Color: "#000000"},
}

// AllMedias lists every media of the registry.
func AllMedias() []Media {
	medias := make([]Media, len(Platforms))
	for i, p := range Platforms {
		medias[i] = p.Media
	}
	return medias
}

// ParseMedia accepts either the media label or the platform key.
func ParseMedia(s string) (Media, bool) {
	for _, p := range Platforms {
		if string(p.Media) == s || p.Key == s {
			return p.Media, true
		}
	}
	return "", false
}

// PlatformKey returns the chart key for m, or m itself when it is not
// registered.
func PlatformKey(platforms []Platform, m Media) string {
	for _, p := range platforms {
		if p.Media == m {
			return p.Key
		}
	}
	return string(m)
}
