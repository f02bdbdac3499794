package repository

// Storage keys. The layout is shared with the browser client, so these are
// part of the persisted format.
const (
	KeyUser              = "user"
	KeyUsers             = "users"
	KeyProjects          = "projects"
	KeyMentors           = "mentors"
	KeyPeers             = "peers"
	KeyJoinedProjects    = "joinedProjects"
	KeyJoinedDetails     = "joinedProjectsDetails"
	KeySelectedSkills    = "selectedProjectSkills"
	KeyChatHistory       = "chatHistory"
	KeyMentorPreferences = "mentorPreferences"
)

// SessionKeys are removed on sign-out.
var SessionKeys = []string{
	KeyUser,
	KeyJoinedProjects,
	KeyJoinedDetails,
	KeySelectedSkills,
	KeyChatHistory,
	KeyMentorPreferences,
}
