package member

import (
	"net/http"

	sharedContext "github.com/changhyeonkim/member-portal/go-api-server/internal/shared/context"
	"github.com/changhyeonkim/member-portal/go-api-server/internal/shared/handler"
	"github.com/changhyeonkim/member-portal/go-api-server/internal/shared/pagination"
	"github.com/gin-gonic/gin"
)

type MemberHandler struct {
	memberService *MemberService
	pageSize      int
}

func NewMemberHandler(memberService *MemberService, pageSize int) *MemberHandler {
	return &MemberHandler{
		memberService: memberService,
		pageSize:      pageSize,
	}
}

// Signup registers a new member. The new member is its own creator.
func (h *MemberHandler) Signup(c *gin.Context) {
	var request SignupRequest
	if !handler.BindJSON(c, &request) {
		return
	}

	memberID, err := h.memberService.Register(c.Request.Context(), request.Username, &request)
	if err != nil {
		handler.RespondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, SignupResponse{ID: memberID})
}

func (h *MemberHandler) CheckUsername(c *gin.Context) {
	var query CheckUsernameQuery
	if !handler.BindQuery(c, &query) {
		return
	}

	exists, err := h.memberService.IsUsernameExists(c.Request.Context(), query.Username)
	if err != nil {
		handler.RespondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, DuplicateCheckResponse{Duplicate: exists})
}

func (h *MemberHandler) CheckEmail(c *gin.Context) {
	var query CheckEmailQuery
	if !handler.BindQuery(c, &query) {
		return
	}

	exists, err := h.memberService.IsEmailExists(c.Request.Context(), query.Email)
	if err != nil {
		handler.RespondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, DuplicateCheckResponse{Duplicate: exists})
}

func (h *MemberHandler) List(c *gin.Context) {
	var query ListMembersQuery
	if !handler.BindQuery(c, &query) {
		return
	}

	page, err := h.memberService.FindMembers(c.Request.Context(), query.Page, h.pageSize)
	if err != nil {
		handler.RespondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, pagination.Map(page, newMemberSummary))
}

func (h *MemberHandler) GetProfile(c *gin.Context) {
	username, ok := sharedContext.RequireUsername(c)
	if !ok {
		return
	}

	response, err := h.memberService.GetProfile(c.Request.Context(), username)
	if err != nil {
		handler.RespondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

// UpdateProfile edits the authenticated member's own profile
func (h *MemberHandler) UpdateProfile(c *gin.Context) {
	username, ok := sharedContext.RequireUsername(c)
	if !ok {
		return
	}

	var request UpdateProfileRequest
	if !handler.BindJSON(c, &request) {
		return
	}

	if err := h.memberService.UpdateProfile(c.Request.Context(), username, username, &request); err != nil {
		handler.RespondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{})
}
