package server

import (
	"net/http"

	"github.com/jrsteele09/go-profile-server/profiles"
)

func (s *Server) MyProfileHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, _ := UserIDFromContext(r.Context())
		p, err := s.profiles.Me(r.Context(), userID)
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, p)
	}
}

// UpsertProfileHandler creates or merges the caller's profile. Status and skills
// are required on every call; other fields are only written when present.
func (s *Server) UpsertProfileHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var in profiles.Input
		if err := decodeJSON(r, &in); err != nil {
			writeError(w, r, err)
			return
		}
		if err := s.auth.Validator().Struct(in); err != nil {
			writeError(w, r, err)
			return
		}
		userID, _ := UserIDFromContext(r.Context())
		p, err := s.profiles.Upsert(r.Context(), userID, in)
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, p)
	}
}

func (s *Server) ListProfilesHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		list, err := s.profiles.List(r.Context())
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, list)
	}
}

func (s *Server) ProfileByUserHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, err := s.profiles.ByUser(r.Context(), r.PathValue("user_id"))
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, p)
	}
}

// DeleteAccountHandler removes the caller's profile and account. Issued tokens
// stay valid until they expire.
func (s *Server) DeleteAccountHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, _ := UserIDFromContext(r.Context())
		if err := s.profiles.DeleteAccount(r.Context(), userID); err != nil {
			writeError(w, r, err)
			return
		}
		writeMessage(w, http.StatusOK, "User deleted")
	}
}

func (s *Server) AddExperienceHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var in profiles.ExperienceInput
		if err := decodeJSON(r, &in); err != nil {
			writeError(w, r, err)
			return
		}
		if err := s.auth.Validator().Struct(in); err != nil {
			writeError(w, r, err)
			return
		}
		userID, _ := UserIDFromContext(r.Context())
		p, err := s.profiles.AddExperience(r.Context(), userID, in)
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, p)
	}
}

func (s *Server) RemoveExperienceHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, _ := UserIDFromContext(r.Context())
		p, err := s.profiles.RemoveExperience(r.Context(), userID, r.PathValue("exp_id"))
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, p)
	}
}

func (s *Server) AddEducationHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var in profiles.EducationInput
		if err := decodeJSON(r, &in); err != nil {
			writeError(w, r, err)
			return
		}
		if err := s.auth.Validator().Struct(in); err != nil {
			writeError(w, r, err)
			return
		}
		userID, _ := UserIDFromContext(r.Context())
		p, err := s.profiles.AddEducation(r.Context(), userID, in)
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, p)
	}
}

func (s *Server) RemoveEducationHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, _ := UserIDFromContext(r.Context())
		p, err := s.profiles.RemoveEducation(r.Context(), userID, r.PathValue("edu_id"))
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, p)
	}
}

// GithubReposHandler lists the newest public repositories for a GitHub handle.
func (s *Server) GithubReposHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		repos, err := s.github.ListRepos(r.Context(), r.PathValue("username"))
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, repos)
	}
}

func (s *Server) HealthHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if s.ping != nil {
			if err := s.ping(r.Context()); err != nil {
				writeMessage(w, http.StatusServiceUnavailable, "store unavailable")
				return
			}
		}
		writeMessage(w, http.StatusOK, "ok")
	}
}
