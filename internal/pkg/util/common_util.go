package util

import (
	"strings"
)

// NormalizeSkillString 将逗号分隔的技能串整理为 "a, b, c" 形式，去除空项与重复项
func NormalizeSkillString(raw string) string {
	seen := make(map[string]struct{})
	skills := make([]string, 0)

	for _, token := range strings.Split(raw, ",") {
		token = strings.TrimSpace(token)
		if token == "" {
			continue
		}
		key := strings.ToLower(token)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		skills = append(skills, token)
	}

	return strings.Join(skills, ", ")
}

// SplitSkills 按 ", " 拆分技能串，空串返回空列表
func SplitSkills(raw string) []string {
	if raw == "" {
		return []string{}
	}
	return strings.Split(raw, ", ")
}

// PtrStr 用于将 string 转换为 *string
func PtrStr(s string) *string {
	return &s
}

// PtrInt 用于将 int 转换为 *int
func PtrInt(i int) *int {
	return &i
}

// PtrFloat64 用于将 float64 转换为 *float64
func PtrFloat64(f float64) *float64 {
	return &f
}

// PtrFloat32 用于将 float32 转换为 *float32
func PtrFloat32(f float32) *float32 {
	return &f
}
