package domain

const (
	CollectionCategory = "categories"
)
const (
	CollectionSubCategory = "subcategories"
)
const (
	CollectionAudio = "audios"
)
const (
	CollectionArtist = "artists"
)
const (
	CollectionAdminUser = "admin_users"
)
const (
	CollectionPrivacyPolicy      = "privacy_policies"
	CollectionTermsAndConditions = "terms_and_conditions"
	CollectionAboutUs            = "about_us"
)
const (
	CollectionFeedback = "feedback"
)
const (
	CollectionNotificationToken = "notification_tokens"
)
