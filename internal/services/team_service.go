package services

import (
	"fmt"
	"strings"
	"time"

	"github.com/badoux/checkmail"
	log "github.com/sirupsen/logrus"

	"tourcrm/internal/apperrors"
	"tourcrm/internal/models"
	"tourcrm/internal/repositories"
	"tourcrm/internal/utils"
)

type TeamService struct {
	view     *entityView[models.TeamMember]
	emails   EmailService
	notifier Notifier
	company  string
	now      func() time.Time
}

func NewTeamService(initial []models.TeamMember, emails EmailService, notifier Notifier, company string) *TeamService {
	return &TeamService{
		view:     newEntityView("team", "U-", initial, validateMember),
		emails:   emails,
		notifier: notifier,
		company:  company,
		now:      time.Now,
	}
}

func validateMember(m models.TeamMember) error {
	return utils.ValidateStruct(m)
}

func (s *TeamService) List(f repositories.MemberFilter) repositories.Page[models.TeamMember] {
	return s.view.page("team members", f.Query())
}

func (s *TeamService) GetByID(id string) (models.TeamMember, error) {
	return s.view.get(id)
}

// Invite adds a member in the Invited state and mails them. A failed mail is
// logged; the member stays on the roster so the invite can be resent.
func (s *TeamService) Invite(req models.InviteRequest) (models.TeamMember, error) {
	req.Email = strings.TrimSpace(strings.ToLower(req.Email))
	req.Name = strings.TrimSpace(req.Name)
	if err := utils.ValidateStruct(req); err != nil {
		return models.TeamMember{}, err
	}
	if err := checkmail.ValidateFormat(req.Email); err != nil {
		return models.TeamMember{}, apperrors.FieldError("email", "must be a valid email")
	}
	if req.Role == models.RoleOwner {
		return models.TeamMember{}, apperrors.FieldError("role", "owner cannot be invited")
	}

	draft := models.TeamMember{
		Name:      req.Name,
		Email:     req.Email,
		Role:      req.Role,
		Status:    models.MemberInvited,
		InvitedAt: s.now(),
	}
	if err := s.view.check(draft); err != nil {
		return models.TeamMember{}, err
	}
	member, err := s.view.mutate("invite", func(c repositories.Collection[models.TeamMember]) (repositories.Collection[models.TeamMember], models.TeamMember, error) {
		if _, ok := findMember(c, req.Email); ok {
			return c, models.TeamMember{}, apperrors.Conflict(fmt.Sprintf("%s is already on the team", req.Email))
		}
		return c.Create(draft, s.view.newID)
	})
	if err != nil {
		return member, err
	}

	if s.emails != nil {
		if err := s.emails.SendTeamInvite(member.Email, member.Name, s.company, string(member.Role)); err != nil {
			log.Warnf("[team][invite] mail to %s failed: %v", member.Email, err)
		}
	}
	notify(s.notifier, fmt.Sprintf("Invitation sent to %s", member.Email))
	return member, nil
}

func (s *TeamService) ChangeRole(id string, role models.Role) (models.TeamMember, error) {
	if !role.Valid() {
		return models.TeamMember{}, apperrors.FieldError("role", "is not a recognized value")
	}
	current, err := s.view.get(id)
	if err != nil {
		return current, err
	}
	if current.Role == models.RoleOwner && role != models.RoleOwner {
		return models.TeamMember{}, apperrors.Conflict("the workspace owner keeps the owner role")
	}
	m, err := s.view.update(id, func(m models.TeamMember) models.TeamMember {
		m.Role = role
		return m
	})
	if err != nil {
		return m, err
	}
	notify(s.notifier, fmt.Sprintf("%s is now %s", m.Name, m.Role))
	return m, nil
}

func findMember(c repositories.Collection[models.TeamMember], email string) (models.TeamMember, bool) {
	email = strings.TrimSpace(email)
	for _, m := range c.Items() {
		if strings.EqualFold(m.Email, email) {
			return m, true
		}
	}
	return models.TeamMember{}, false
}

// Invitation returns the pending invite for email, if there is one.
func (s *TeamService) Invitation(email string) (models.TeamMember, bool) {
	for _, m := range s.view.snapshot() {
		if strings.EqualFold(m.Email, strings.TrimSpace(email)) && m.Status == models.MemberInvited {
			return m, true
		}
	}
	return models.TeamMember{}, false
}

// Activate marks an invited member as active, e.g. once they sign up.
func (s *TeamService) Activate(email string) (models.TeamMember, bool) {
	updated, err := s.view.mutate("activate", func(c repositories.Collection[models.TeamMember]) (repositories.Collection[models.TeamMember], models.TeamMember, error) {
		m, ok := findMember(c, email)
		if !ok || m.Status != models.MemberInvited {
			return c, models.TeamMember{}, apperrors.NotFound("invitation", email)
		}
		return repositories.ChangeStatus(c, m.ID, models.MemberActive)
	})
	return updated, err == nil
}

func (s *TeamService) All() []models.TeamMember {
	return s.view.snapshot()
}
