package directory

import (
	"dirsync/core/utils"

	"go.uber.org/zap"
)

// Attribute names read from each member record.
const (
	AttrDepartment = "department"
	AttrBuilding   = "physicalDeliveryOfficeName"
)

// ExtractNames collects the distinct department and building names found in
// members, in first-seen order. Records lacking an attribute are skipped for
// that attribute only.
func ExtractNames(members []Member, l *zap.Logger) (departments, buildings *utils.NameSet) {
	if l == nil {
		l = zap.NewNop()
	}

	departments = &utils.NameSet{}
	buildings = &utils.NameSet{}

	l.Info("Parsing staff records", zap.Int("count", len(members)))

	for _, member := range members {
		if dept, ok := member.First(AttrDepartment); ok && departments.Add(dept) {
			l.Info("Found department", zap.String("name", dept))
		}
		if bldg, ok := member.First(AttrBuilding); ok && buildings.Add(bldg) {
			l.Info("Found building", zap.String("name", bldg))
		}
	}

	l.Info("Directory names collected",
		zap.Int("departments", departments.Len()),
		zap.Int("buildings", buildings.Len()),
	)

	return departments, buildings
}

// First returns the first value of attr, if any.
func (m Member) First(attr string) (string, bool) {
	values, ok := m.Attributes[attr]
	if !ok || len(values) == 0 {
		return "", false
	}
	return values[0], true
}
