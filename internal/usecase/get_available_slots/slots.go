package get_available_slots

import "github.com/m04kA/Salon-AvailabilityService/internal/domain"

// hasOverlap проверяет пересечение двух полуоткрытых интервалов [start1, end1) и [start2, end2)
//
// Полуоткрытая семантика используется во всех проверках конфликтов:
// слот, заканчивающийся ровно в момент начала другого интервала, пересечением не считается,
// поэтому записи "впритык" допустимы
func hasOverlap(start1, end1, start2, end2 int) bool {
	return start1 < end2 && end1 > start2
}

// generateCandidateSlots генерирует сетку кандидатов в слоты для одного сотрудника
//
// Кандидаты шириной serviceDuration идут с шагом stepInterval от startTime,
// пока слот целиком помещается до endTime. Сетка фиксированная: услуга на 90 минут
// всё равно стартует только на границах шага, а не через свою длительность.
//
// Кандидат, пересекающий перерыв [breakStart, breakEnd), не эмитится - генератор
// перепрыгивает к breakEnd и продолжает оттуда. Это оптимизация обхода:
// окончательную защиту от пересечения с перерывом даёт isSlotAvailable
func generateCandidateSlots(startTime, endTime int, breakStart, breakEnd *int, serviceDuration, stepInterval int) []candidateSlot {
	if serviceDuration <= 0 || stepInterval <= 0 {
		return nil
	}

	var slots []candidateSlot

	current := startTime
	for current+serviceDuration <= endTime {
		if breakStart != nil && breakEnd != nil &&
			hasOverlap(current, current+serviceDuration, *breakStart, *breakEnd) {
			current = *breakEnd
			continue
		}

		slots = append(slots, candidateSlot{start: current, end: current + serviceDuration})
		current += stepInterval
	}

	return slots
}

// isSlotAvailable проверяет кандидата на конфликты с ограничениями сотрудника
//
// Кандидат отклоняется, если пересекает:
//   - занятый интервал любой неотменённой записи [aptStart, aptStart+duration+buffer);
//   - любую применимую блокировку [blockStart, blockEnd) - блокировки авторитетны
//     как есть и buffer time к ним не добавляется;
//   - окно перерыва - независимо от пропуска в генераторе, чтобы корректность
//     не зависела от точности skip-логики на границах
func isSlotAvailable(slot candidateSlot, appointments []*domain.Appointment, blocked []*domain.BlockedSlot, breakStart, breakEnd *int, bufferTime int) bool {
	for _, apt := range appointments {
		aptStart, aptEnd := apt.OccupiedInterval(bufferTime)
		if hasOverlap(slot.start, slot.end, aptStart, aptEnd) {
			return false
		}
	}

	for _, block := range blocked {
		if hasOverlap(slot.start, slot.end, block.StartTime.Minutes(), block.EndTime.Minutes()) {
			return false
		}
	}

	if breakStart != nil && breakEnd != nil &&
		hasOverlap(slot.start, slot.end, *breakStart, *breakEnd) {
		return false
	}

	return true
}
