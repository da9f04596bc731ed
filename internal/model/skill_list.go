package model

import (
	"database/sql/driver"
	"strings"

	"github.com/goccy/go-json"
)

// SkillList 以 JSON 数组形式落库的技能列表
type SkillList []string

// NormalizeSkills 去除首尾空白并丢弃空项
func NormalizeSkills(skills []string) SkillList {
	list := make(SkillList, 0, len(skills))
	for _, skill := range skills {
		skill = strings.TrimSpace(skill)
		if skill == "" {
			continue
		}
		list = append(list, skill)
	}
	return list
}

func (s SkillList) Value() (driver.Value, error) {
	if s == nil {
		return "[]", nil
	}
	b, err := json.Marshal([]string(s))
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// Scan 兼容历史脏数据：无法解析时视为空列表
func (s *SkillList) Scan(value interface{}) error {
	var raw []byte
	switch v := value.(type) {
	case nil:
		*s = SkillList{}
		return nil
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		*s = SkillList{}
		return nil
	}

	var list []string
	if err := json.Unmarshal(raw, &list); err != nil || list == nil {
		*s = SkillList{}
		return nil
	}
	*s = list
	return nil
}
