package db

import (
	"travel-concierge/api/models"

	"github.com/google/uuid"
)

func CreateSession(userID, agentType, remoteID, title string) (*models.Session, error) {
	query := `
		INSERT INTO sessions (user_id, agent_type, remote_id, title)
		VALUES ($1, $2, $3, $4)
		RETURNING id, user_id, agent_type, remote_id, title, created_at
	`
	session := &models.Session{}

	err := DB.QueryRow(query, userID, agentType, remoteID, title).Scan(
		&session.ID,
		&session.UserID,
		&session.AgentType,
		&session.RemoteID,
		&session.Title,
		&session.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	return session, nil
}

func GetSessionByID(id uuid.UUID) (*models.Session, error) {
	query := `
		SELECT id, user_id, agent_type, remote_id, title, created_at
		FROM sessions
		WHERE id = $1
	`
	session := &models.Session{}
	err := DB.QueryRow(query, id).Scan(
		&session.ID,
		&session.UserID,
		&session.AgentType,
		&session.RemoteID,
		&session.Title,
		&session.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	return session, nil
}

func GetSessionsByUserID(userID string) ([]*models.Session, error) {
	query := `
		SELECT id, user_id, agent_type, remote_id, title, created_at
		FROM sessions
		WHERE user_id = $1
		ORDER BY created_at DESC
	`
	sessions := []*models.Session{}

	rows, err := DB.Query(query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		session := &models.Session{}
		err := rows.Scan(
			&session.ID,
			&session.UserID,
			&session.AgentType,
			&session.RemoteID,
			&session.Title,
			&session.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		sessions = append(sessions, session)
	}

	return sessions, nil
}

func DeleteSession(id uuid.UUID) error {
	query := `
		DELETE FROM sessions
		WHERE id = $1
	`
	_, err := DB.Exec(query, id)
	if err != nil {
		return err
	}

	return nil
}
