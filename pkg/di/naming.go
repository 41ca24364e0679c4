package di

import "strings"

// metricsNamespace แปลงชื่อ app ให้เป็น prometheus namespace ที่ใช้ได้
func metricsNamespace(appName string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(appName) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}
	ns := strings.Trim(b.String(), "_")
	if ns == "" || (ns[0] >= '0' && ns[0] <= '9') {
		return "task_api"
	}
	return ns
}
