package achievement

import "github.com/julianstephens/pomolit/internal/models"

// Catalog is the fixed badge set seeded into an empty store, in display order.
var Catalog = []models.Achievement{
	{Name: "初めの一歩", Description: "最初のポモドーロを完了", BadgeType: models.BadgePomodoro, Requirement: 1, Icon: "alarm"},
	{Name: "ポモドーロ初心者", Description: "10回のポモドーロを完了", BadgeType: models.BadgePomodoro, Requirement: 10, Icon: "alarm-fill"},
	{Name: "ポモドーロマスター", Description: "100回のポモドーロを完了", BadgeType: models.BadgePomodoro, Requirement: 100, Icon: "trophy"},
	{Name: "習慣の力", Description: "7日連続で習慣を達成", BadgeType: models.BadgeStreak, Requirement: 7, Icon: "fire"},
	{Name: "継続は力なり", Description: "30日連続で習慣を達成", BadgeType: models.BadgeStreak, Requirement: 30, Icon: "star-fill"},
	{Name: "タスクハンター", Description: "50個のタスクを完了", BadgeType: models.BadgeTask, Requirement: 50, Icon: "check-circle-fill"},
}
