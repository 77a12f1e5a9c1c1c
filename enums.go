package pixiv

// Wire values for the closed parameter sets the API accepts. None of
// these are validated locally beyond required-field checks; an
// out-of-set value is passed through and the server decides.

type SearchTarget string

const (
	SearchTargetPartialMatchForTags SearchTarget = "partial_match_for_tags"
	SearchTargetExactMatchForTags   SearchTarget = "exact_match_for_tags"
	SearchTargetTitleAndCaption     SearchTarget = "title_and_caption"
)

type Sort string

const (
	SortDateDesc    Sort = "date_desc"
	SortDateAsc     Sort = "date_asc"
	SortPopularDesc Sort = "popular_desc"
)

type Duration string

const (
	DurationWithinLastDay   Duration = "within_last_day"
	DurationWithinLastWeek  Duration = "within_last_week"
	DurationWithinLastMonth Duration = "within_last_month"
)

// Visibility is the "restrict" value of bookmarks and follows.
type Visibility string

const (
	VisibilityPublic  Visibility = "public"
	VisibilityPrivate Visibility = "private"
)

type ContentType string

const (
	ContentTypeIllust ContentType = "illust"
	ContentTypeManga  ContentType = "manga"
	ContentTypeUgoira ContentType = "ugoira"
	ContentTypeNovel  ContentType = "novel"
)

type RankingMode string

const (
	RankingModeDay          RankingMode = "day"
	RankingModeDayMale      RankingMode = "day_male"
	RankingModeDayFemale    RankingMode = "day_female"
	RankingModeDayR18       RankingMode = "day_r18"
	RankingModeDayMaleR18   RankingMode = "day_male_r18"
	RankingModeDayFemaleR18 RankingMode = "day_female_r18"
	RankingModeWeek         RankingMode = "week"
	RankingModeWeekOriginal RankingMode = "week_original"
	RankingModeWeekRookie   RankingMode = "week_rookie"
	RankingModeWeekR18      RankingMode = "week_r18"
	RankingModeWeekR18G     RankingMode = "week_r18g"
	RankingModeMonth        RankingMode = "month"
)

// apiFilter is sent on the endpoints that require a platform filter.
const apiFilter = "for_ios"
