package database

import (
	"CareerBridge/internal/model"
	"CareerBridge/internal/pkg/consts"
	"CareerBridge/internal/pkg/security"
	"CareerBridge/internal/pkg/util"
	"context"
	log "log/slog"
	"time"

	"gorm.io/gorm"
)

const samplePassword = "password123"

// sampleJobLifetime 示例岗位自写入起的有效期
const sampleJobLifetime = 3

// SeedSampleData 表为空时写入演示数据，已有数据的表不动
// 管理员账号先于示例数据创建，users 表只统计普通用户
func SeedSampleData(ctx context.Context, db *gorm.DB) error {
	db = db.WithContext(ctx)

	regularUsers := db.Model(&model.User{}).Where("role = ?", consts.RoleUser)
	if err := seedIfEmpty(db, "users", regularUsers, func(tx *gorm.DB) error {
		users, err := sampleUsers()
		if err != nil {
			return err
		}
		return tx.Create(&users).Error
	}); err != nil {
		return err
	}

	if err := seedIfEmpty(db, "jobs", db.Model(&model.Job{}), func(tx *gorm.DB) error {
		jobs := sampleJobs(time.Now())
		return tx.Create(&jobs).Error
	}); err != nil {
		return err
	}

	return seedIfEmpty(db, "courses", db.Model(&model.Course{}), func(tx *gorm.DB) error {
		courses := sampleCourses()
		return tx.Create(&courses).Error
	})
}

func seedIfEmpty(db *gorm.DB, name string, scope *gorm.DB, insert func(tx *gorm.DB) error) error {
	var count int64
	if err := scope.Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	if err := insert(db); err != nil {
		return err
	}
	log.Info("Sample data inserted", "table", name)
	return nil
}

func sampleUsers() ([]model.User, error) {
	users := []model.User{
		{Username: "john_doe", Email: "john@example.com"},
		{Username: "jane_smith", Email: "jane@example.com"},
		{Username: "mike_wilson", Email: "mike@example.com"},
	}
	for i := range users {
		hash, err := security.HashPassword(samplePassword)
		if err != nil {
			return nil, err
		}
		users[i].PasswordHash = hash
		users[i].Role = consts.RoleUser
	}
	return users, nil
}

// sampleJobs 截止日期按写入时间顺延，避免启动时的过期清理立即关闭
func sampleJobs(now time.Time) []model.Job {
	y, m, d := now.AddDate(0, sampleJobLifetime, 0).Date()
	deadline := time.Date(y, m, d, 0, 0, 0, 0, now.Location())

	return []model.Job{
		{
			Title: "Software Engineer", Company: "Tech Corp", Location: util.PtrStr("Bangalore"), JobType: consts.DefaultJobType,
			ExperienceRequired: 2, SalaryMin: util.PtrInt(600000), SalaryMax: util.PtrInt(1200000),
			Description:    "We are looking for a skilled software engineer to join our team.",
			Requirements:   util.PtrStr("Bachelor degree in Computer Science or related field"),
			SkillsRequired: "Python, JavaScript, React, Node.js", Benefits: util.PtrStr("Health insurance, flexible hours"),
			ApplicationDeadline: &deadline, Status: consts.JobStatusActive,
		},
		{
			Title: "Data Scientist", Company: "Data Analytics Inc", Location: util.PtrStr("Mumbai"), JobType: consts.DefaultJobType,
			ExperienceRequired: 3, SalaryMin: util.PtrInt(800000), SalaryMax: util.PtrInt(1500000),
			Description:    "Join our data science team to work on exciting ML projects.",
			Requirements:   util.PtrStr("Master degree in Data Science or related field"),
			SkillsRequired: "Python, Machine Learning, SQL, Statistics", Benefits: util.PtrStr("Remote work, learning budget"),
			ApplicationDeadline: &deadline, Status: consts.JobStatusActive,
		},
		{
			Title: "Frontend Developer", Company: "Web Solutions", Location: util.PtrStr("Delhi"), JobType: consts.DefaultJobType,
			ExperienceRequired: 1, SalaryMin: util.PtrInt(400000), SalaryMax: util.PtrInt(800000),
			Description:    "Create amazing user interfaces for our web applications.",
			Requirements:   util.PtrStr("Bachelor degree in Computer Science"),
			SkillsRequired: "HTML, CSS, JavaScript, React, Vue.js", Benefits: util.PtrStr("Team events, gym membership"),
			ApplicationDeadline: &deadline, Status: consts.JobStatusActive,
		},
	}
}

func sampleCourses() []model.Course {
	course := func(title, desc, provider string, weeks int, level, skills, url string, price, rating float64) model.Course {
		return model.Course{
			Title: title, Description: desc, Provider: util.PtrStr(provider), DurationWeeks: util.PtrInt(weeks),
			DifficultyLevel: util.PtrStr(level), SkillsCovered: skills, CourseURL: util.PtrStr(url), Price: price, Rating: util.PtrFloat64(rating),
		}
	}

	return []model.Course{
		course("Complete Python Bootcamp", "Learn Python from scratch to advanced level", "Udemy", 12, "Beginner", "Python, OOP, Data Structures", "https://udemy.com/python-bootcamp", 2999, 4.5),
		course("Machine Learning Fundamentals", "Introduction to ML algorithms and techniques", "Coursera", 16, "Intermediate", "Python, Scikit-learn, TensorFlow", "https://coursera.org/ml-fundamentals", 0, 4.7),
		course("React Development", "Build modern web applications with React", "GeeksforGeeks", 8, "Intermediate", "React, JavaScript, HTML, CSS", "https://geeksforgeeks.org/react-course", 1999, 4.3),
		course("Data Science with Python", "Complete data science course with Python", "Udemy", 20, "Advanced", "Python, Pandas, NumPy, Matplotlib", "https://udemy.com/data-science-python", 3999, 4.6),
		course("AWS Cloud Practitioner", "Learn AWS cloud services and deployment", "Coursera", 10, "Beginner", "AWS, Cloud Computing, EC2, S3", "https://coursera.org/aws-practitioner", 0, 4.4),
		course("Web Development Bootcamp", "Complete web development curriculum", "FreeCodeCamp", 24, "Beginner", "HTML, CSS, JavaScript, React, Node.js", "https://freecodecamp.org", 0, 4.7),
		course("Cybersecurity Fundamentals", "Learn cybersecurity basics and best practices", "Coursera", 14, "Intermediate", "Security, Networking, Cryptography", "https://coursera.org/cybersecurity", 0, 4.5),
		course("DevOps Engineering", "Master DevOps tools and practices", "Udemy", 18, "Advanced", "Docker, Kubernetes, CI/CD, AWS", "https://udemy.com/devops", 3999, 4.8),
	}
}
