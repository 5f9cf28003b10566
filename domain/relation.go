package domain

// Relation names a parent→children back-reference array. The reference
// integrity manager is the only component allowed to mutate these arrays.
type Relation string

const (
	RelationCategorySubcategories Relation = "category.subcategories"
	RelationSubCategoryAudios     Relation = "subcategory.audios"
	RelationArtistAudios          Relation = "artist.audios"
)
