package i18n

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Message keys used by the information page.
const (
	KeyTitle           = "page.title"
	KeyIntro           = "page.intro"
	KeyFeaturesHeading = "page.features"
	KeyFeatureCut      = "feature.cut"
	KeyFeatureGlyphs   = "feature.glyphs"
	KeyFeatureBalance  = "feature.balance"
	KeyFeatureSecure   = "feature.secure"
	KeyDownload        = "page.download"
	KeyRepository      = "page.repository"
)

func init() {
	en := language.English
	message.SetString(en, KeyTitle, "Password Paper Generator")
	message.SetString(en, KeyIntro, "Generate a password sheet: an A4 PDF with random characters laid out in a grid.")
	message.SetString(en, KeyFeaturesHeading, "Features:")
	message.SetString(en, KeyFeatureCut, "Every character sits in its own box, easy to cut out with scissors")
	message.SetString(en, KeyFeatureGlyphs, "Easily misread characters (l, 1, I, O, 0, o) are excluded")
	message.SetString(en, KeyFeatureBalance, "A balanced mix of uppercase, lowercase and digits")
	message.SetString(en, KeyFeatureSecure, "Drawn from a cryptographically secure random number generator")
	message.SetString(en, KeyDownload, "Download PDF")
	message.SetString(en, KeyRepository, "GitHub")

	ja := language.Japanese
	message.SetString(ja, KeyTitle, "Password Paper Generator")
	message.SetString(ja, KeyIntro, "パスワード用紙を生成します。A4用紙にランダムな文字をグリッド状に配置したPDFをダウンロードできます。")
	message.SetString(ja, KeyFeaturesHeading, "特徴:")
	message.SetString(ja, KeyFeatureCut, "各文字が四角で囲まれており、ハサミで切りやすい")
	message.SetString(ja, KeyFeatureGlyphs, "誤読しやすい文字（l, 1, I, O, 0, o）を除外")
	message.SetString(ja, KeyFeatureBalance, "大文字・小文字・数字をバランスよく配置")
	message.SetString(ja, KeyFeatureSecure, "暗号学的に安全な乱数生成器を使用")
	message.SetString(ja, KeyDownload, "PDFをダウンロード")
	message.SetString(ja, KeyRepository, "GitHub")
}
