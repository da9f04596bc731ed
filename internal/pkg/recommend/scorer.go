package recommend

import (
	"fmt"
	"strings"
)

const (
	// DefaultJobMinScore 岗位推荐的最低匹配度（严格大于）
	DefaultJobMinScore = 0.2
	// DefaultCourseMaxOverlap 课程推荐的最高重合度（严格小于）
	DefaultCourseMaxOverlap = 0.8
)

type Type string

const (
	TypeJob    Type = "job"
	TypeCourse Type = "course"
)

// Candidate 待评分条目，Skills 为逗号分隔的原始技能串
type Candidate struct {
	ID     uint64
	Skills string
}

// Result 一条推荐结果
type Result struct {
	Type     Type
	TargetID uint64
	Score    float64
	Reason   string
}

// SkillSet 小写去重后的技能集合
type SkillSet map[string]struct{}

// NewSkillSet 合并多个技能列表，统一转为小写
func NewSkillSet(lists ...[]string) SkillSet {
	set := make(SkillSet)
	for _, list := range lists {
		for _, skill := range list {
			token := strings.ToLower(strings.TrimSpace(skill))
			if token == "" {
				continue
			}
			set[token] = struct{}{}
		}
	}
	return set
}

// ParseSkills 解析逗号分隔的技能串
func ParseSkills(raw string) SkillSet {
	return NewSkillSet(strings.Split(raw, ","))
}

// Overlap 返回 s 中同时出现在 u 里的技能数
func (u SkillSet) Overlap(s SkillSet) int {
	n := 0
	for skill := range s {
		if _, ok := u[skill]; ok {
			n++
		}
	}
	return n
}

type Scorer struct {
	jobMinScore      float64
	courseMaxOverlap float64
}

func NewScorer(jobMinScore, courseMaxOverlap float64) *Scorer {
	return &Scorer{
		jobMinScore:      jobMinScore,
		courseMaxOverlap: courseMaxOverlap,
	}
}

func DefaultScorer() *Scorer {
	return NewScorer(DefaultJobMinScore, DefaultCourseMaxOverlap)
}

// ScoreJob 岗位得分 = 命中数 / 岗位技能数
func (s *Scorer) ScoreJob(user SkillSet, job Candidate) (Result, bool) {
	required := ParseSkills(job.Skills)
	if len(required) == 0 {
		return Result{Type: TypeJob, TargetID: job.ID}, false
	}

	matched := user.Overlap(required)
	score := float64(matched) / float64(len(required))

	return Result{
		Type:     TypeJob,
		TargetID: job.ID,
		Score:    score,
		Reason:   fmt.Sprintf("Matches %d out of %d required skills", matched, len(required)),
	}, score > s.jobMinScore
}

// ScoreCourse 课程得分 = 1 - 重合度，重合度过高说明用户已掌握
func (s *Scorer) ScoreCourse(user SkillSet, course Candidate) (Result, bool) {
	covered := ParseSkills(course.Skills)
	if len(covered) == 0 {
		return Result{Type: TypeCourse, TargetID: course.ID}, false
	}

	matched := user.Overlap(covered)
	overlap := float64(matched) / float64(len(covered))

	return Result{
		Type:     TypeCourse,
		TargetID: course.ID,
		Score:    1 - overlap,
		Reason:   fmt.Sprintf("Will help you learn %d new skills", len(covered)-matched),
	}, overlap < s.courseMaxOverlap
}

// Score 按岗位、课程的顺序输出全部入选的推荐
func (s *Scorer) Score(user SkillSet, jobs, courses []Candidate) []Result {
	results := make([]Result, 0, len(jobs)+len(courses))

	for _, job := range jobs {
		if r, ok := s.ScoreJob(user, job); ok {
			results = append(results, r)
		}
	}

	for _, course := range courses {
		if r, ok := s.ScoreCourse(user, course); ok {
			results = append(results, r)
		}
	}

	return results
}
