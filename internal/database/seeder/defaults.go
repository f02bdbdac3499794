package seeder

func Defaults() []Seeder {
	return []Seeder{
		PeersSeeder{},
		MentorsSeeder{},
		ProjectsSeeder{},
	}
}
